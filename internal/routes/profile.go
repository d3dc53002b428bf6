package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/handlers"
	"github.com/polyglotlabs/linguachat-backend/internal/middleware"
)

func RegisterProfileRoutes(r gin.IRouter) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.POST("/languages-to-learn", handlers.AddLanguageToLearn)
		profile.PUT("/languages-to-learn", handlers.UpdateLanguageToLearn)
		profile.DELETE("/languages-to-learn", handlers.DeleteLanguageToLearn)
		profile.POST("/languages-to-teach", handlers.AddLanguageToTeach)
		profile.PUT("/languages-to-teach", handlers.UpdateLanguageToTeach)
		profile.DELETE("/languages-to-teach", handlers.DeleteLanguageToTeach)
		profile.PUT("/translation-language", handlers.UpdateTranslationLanguage)
		profile.POST("/avatar", handlers.UploadAvatar)
		profile.GET("/keys", handlers.GetMyKeys)
	}

	// Public keys are public by definition
	r.GET("/users/:userId/public-key", middleware.AuthMiddleware(), handlers.GetUserPublicKey)
}
