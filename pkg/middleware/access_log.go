package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
)

// AccessLog registra uma entrada por requisição
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		LoggerFrom(c, log).Info("Requisição processada",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP())
	}
}
