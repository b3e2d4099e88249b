package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
)

// Recovery converte panics em 500 com o corpo informado, sem expor detalhes ao cliente
func Recovery(log logger.Logger, body any) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		LoggerFrom(c, log).Error("Panic ao processar requisição",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
