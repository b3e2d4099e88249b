package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/therapy-chatbot-api/internal/adapter/api/controller"
)

// ConfigureChatRoutes configura as rotas do chat e do health check
func ConfigureChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, healthController *controller.HealthController) {
	router.POST("/chat", chatController.Chat)
	router.GET("/health", healthController.Check)
}
