package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kusheen8/BoooKit/config/db"
	"github.com/kusheen8/BoooKit/controllers/promo_controller"
)

func RegisterPromoRoutes(router *gin.Engine) {
	promoController := promo_controller.NewPromoController(db.DB)

	api := router.Group("/api")
	{
		api.POST("/promo/validate", promoController.ValidatePromo)
	}
}
