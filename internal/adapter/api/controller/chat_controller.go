package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/dto"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/completion"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/middleware"
)

// ChatController handles chat requests
type ChatController struct {
	responder *completion.Responder
	logger    logger.Logger
}

// NewChatController creates a new chat controller
func NewChatController(responder *completion.Responder, logger logger.Logger) *ChatController {
	return &ChatController{
		responder: responder,
		logger:    logger,
	}
}

// Chat godoc
// @Summary Send a message to the assistant
// @Description Forwards the user message to the completion provider and returns the generated reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Message to answer"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	log := middleware.LoggerFrom(ctx, c.logger)

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if isMissingMessage(err) {
			log.Debug("Requisição sem mensagem", "error", err)
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrMessageRequired))
			return
		}
		log.Error("Erro ao ler corpo da requisição", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrInternalServer))
		return
	}

	reply := c.responder.Reply(ctx.Request.Context(), *req.Message)

	ctx.JSON(http.StatusOK, dto.NewChatResponse(reply, time.Now()))
}

// isMissingMessage indica se o corpo não traz uma mensagem utilizável:
// corpo vazio, JSON null, chave ausente ou valor que não é texto.
func isMissingMessage(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
