package chat

import "github.com/gin-gonic/gin"

// Register routes for the chat module. The endpoint is unauthenticated on
// purpose
func RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/chat", postChat)
}
