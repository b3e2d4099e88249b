package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/therapy-chatbot-api/pkg/logger"
)

const (
	// RequestIDHeader é o cabeçalho usado para correlacionar requisições
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID retorna o ID da requisição atual, ou vazio fora do middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LoggerFrom retorna base com o request_id da requisição atual
func LoggerFrom(c *gin.Context, base logger.Logger) logger.Logger {
	if id := GetRequestID(c); id != "" {
		return base.With(requestIDKey, id)
	}
	return base
}
