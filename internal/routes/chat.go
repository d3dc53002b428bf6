package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/handlers"
	"github.com/polyglotlabs/linguachat-backend/internal/middleware"
)

func RegisterChatRoutes(r gin.IRouter) {
	r.POST("/search", middleware.AuthMiddleware(), handlers.SearchPartners)

	chats := r.Group("/chats")
	chats.Use(middleware.AuthMiddleware())
	{
		chats.POST("", handlers.CreateChat)
		chats.GET("", handlers.ListChats)
		chats.GET("/:chatId/messages", handlers.GetChatMessages)
		chats.GET("/:chatId/members", handlers.GetChatMembers)
	}
}
