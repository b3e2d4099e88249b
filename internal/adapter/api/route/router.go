package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/controller"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/dto"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/completion"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/middleware"
)

// NewRouter cria o engine do gin com middlewares globais e rotas da API
func NewRouter(basePath string, client completion.Client, log logger.Logger) *gin.Engine {
	router := gin.New()

	// A ordem importa: o access log precisa ver o status gerado pelo Recovery
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Recovery(log, dto.NewErrorResponse(dto.ErrInternalServer)))
	router.Use(middleware.CORS())

	chatController := controller.NewChatController(completion.NewResponder(client, log), log)
	healthController := controller.NewHealthController()

	ConfigureChatRoutes(router.Group(basePath), chatController, healthController)

	return router
}
