package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/handlers"
	"github.com/polyglotlabs/linguachat-backend/internal/middleware"
)

func RegisterReferenceRoutes(r gin.IRouter) {
	ref := r.Group("/reference")
	{
		ref.GET("/languages", handlers.GetLanguages)
		ref.GET("/proficiency-levels", handlers.GetProficiencyLevels)
		ref.GET("/countries", handlers.GetCountries)
		ref.GET("/cities", handlers.GetCities)
		ref.GET("/translation-languages", handlers.GetTranslationLanguages)
	}
}

func RegisterTranslateRoutes(r gin.IRouter) {
	r.POST("/translate",
		middleware.AuthMiddleware(),
		middleware.TranslateRateLimit(),
		handlers.TranslateText)
}
