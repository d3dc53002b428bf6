package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/handlers"
	"github.com/polyglotlabs/linguachat-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)

	// OAuth
	r.GET("/google/login", handlers.GoogleLogin)
	r.GET("/google/callback", handlers.GoogleCallback)
}
