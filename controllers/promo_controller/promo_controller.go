package promo_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	redisclient "github.com/kusheen8/BoooKit/config/redis"
	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/promo_models"
	"github.com/kusheen8/BoooKit/models/shared_models"
)

type PromoController struct {
	db shared_models.DBTX
}

// NewPromoController creates a new instance of PromoController.
func NewPromoController(db shared_models.DBTX) *PromoController {
	return &PromoController{db: db}
}

// ValidatePromoRequest is the payload for POST /api/promo/validate.
// Subtotal is a pointer so that an absent field fails binding instead of
// defaulting to zero.
type ValidatePromoRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal *int   `json:"subtotal" binding:"required,min=0"`
}

// ValidatePromoResponse is the structured pre-flight result. Unlike
// booking creation, an unknown code is reported explicitly here.
type ValidatePromoResponse struct {
	Valid    bool   `json:"valid"`
	Discount int    `json:"discount"`
	Message  string `json:"message"`
}

// ValidatePromo handles POST /api/promo/validate. It previews the discount
// a code would grant on a subtotal without writing anything. The discount
// comes from the same helper booking creation uses, so the two can never
// disagree for the same (code, subtotal) pair.
func (pc *PromoController) ValidatePromo(c *gin.Context) {
	var req ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	rdb, _ := redisclient.GetRedisClient(ctx)

	promo, err := promo_models.GetPromoCode(ctx, pc.db, rdb, req.Code)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to validate promo code %q: %v", req.Code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
		return
	}

	if promo == nil {
		c.JSON(http.StatusOK, ValidatePromoResponse{
			Valid:    false,
			Discount: 0,
			Message:  "Invalid promo code",
		})
		return
	}

	discount := promo_models.Discount(promo, *req.Subtotal)
	c.JSON(http.StatusOK, ValidatePromoResponse{
		Valid:    true,
		Discount: discount,
		Message:  fmt.Sprintf("%s applied! You save ₹%d", promo.Description, discount),
	})
}
