package booking_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	redisclient "github.com/kusheen8/BoooKit/config/redis"
	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/booking_models"
	"github.com/kusheen8/BoooKit/models/experience_models"
	"github.com/kusheen8/BoooKit/models/promo_models"
	"github.com/kusheen8/BoooKit/models/shared_models"
	"github.com/kusheen8/BoooKit/utils"
	"github.com/kusheen8/BoooKit/utils/mail"
)

// BookingController holds dependencies for booking operations.
type BookingController struct {
	db shared_models.DBTX
}

// NewBookingController creates a new instance of BookingController.
func NewBookingController(db shared_models.DBTX) *BookingController {
	return &BookingController{db: db}
}

// CreateBookingRequest is the payload for POST /api/bookings.
type CreateBookingRequest struct {
	ExperienceID string `json:"experienceId" binding:"required,uuid"`
	FullName     string `json:"fullName" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	PromoCode    string `json:"promoCode"`
	AgreeToTerms bool   `json:"agreeToTerms" binding:"required,eq=true"`
}

// CreateBooking handles POST /api/bookings.
//
// Pricing: subtotal = price * quantity, taxes = 5% of subtotal rounded
// half-up, discount from the promo code if it resolves. An unknown promo
// code is silently ignored here; only the pre-flight validation endpoint
// reports it as invalid. The total is not clamped when a fixed discount
// exceeds subtotal plus taxes.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	experienceID, err := uuid.Parse(req.ExperienceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience ID format"})
		return
	}

	ctx := c.Request.Context()

	experience, err := experience_models.GetExperienceByID(ctx, bc.db, experienceID)
	if err != nil {
		if errors.Is(err, utils.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch experience %s: %v", experienceID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	subtotal := shared_models.Subtotal(experience.Price, req.Quantity)
	taxes := shared_models.Taxes(subtotal)

	discount := 0
	var appliedPromo *string
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		rdb, _ := redisclient.GetRedisClient(ctx)
		promo, err := promo_models.GetPromoCode(ctx, bc.db, rdb, code)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to look up promo code %q: %v", code, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
			return
		}
		if promo != nil {
			discount = promo_models.Discount(promo, subtotal)
		}
		// The submitted code is stored in normalized form even when it did
		// not resolve; only resolved codes contribute a discount.
		normalized := promo_models.NormalizeCode(code)
		appliedPromo = &normalized
	}

	total := shared_models.Total(subtotal, taxes, discount)

	reference, err := utils.GenerateBookingReference()
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to generate booking reference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	booking, err := booking_models.NewBooking(
		experience.ID, experience.Name, req.FullName, req.Email,
		req.Date, req.Time, req.Quantity, appliedPromo,
		subtotal, taxes, discount, total, reference,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	created, err := booking_models.CreateBooking(ctx, bc.db, booking)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to save booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	// Confirmation email is best-effort and must not delay the response.
	go mail.SendBookingConfirmation(created)

	c.JSON(http.StatusCreated, created)
}

// GetBookingByID handles GET /api/bookings/:id.
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	booking, err := booking_models.GetBookingByID(c.Request.Context(), bc.db, id)
	if err != nil {
		if errors.Is(err, utils.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetAllBookings handles GET /api/bookings, newest first.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := booking_models.GetAllBookings(c.Request.Context(), bc.db)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
