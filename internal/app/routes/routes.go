package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eduverify/internship-portal/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, documentController *controllers.DocumentController) {
	api := router.Group("/api")
	{
		api.POST("/generate-certificate", documentController.GenerateCertificate)
		api.POST("/generate-attendance", documentController.GenerateAttendanceSheet)
	}

	// Health check endpoint (public)
	router.GET("/health", documentController.Health)
}
