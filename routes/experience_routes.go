package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kusheen8/BoooKit/config/db"
	"github.com/kusheen8/BoooKit/controllers/experience_controller"
)

func RegisterExperienceRoutes(router *gin.Engine) {
	experienceController := experience_controller.NewExperienceController(db.DB)

	api := router.Group("/api")
	{
		api.GET("/experiences", experienceController.GetAllExperiences)
		api.GET("/experiences/:id", experienceController.GetExperienceByID)
		api.GET("/experiences/:id/availability", experienceController.CheckSlotAvailability)
	}
}
