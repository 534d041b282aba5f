package experience_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/booking_models"
	"github.com/kusheen8/BoooKit/models/experience_models"
	"github.com/kusheen8/BoooKit/models/shared_models"
	"github.com/kusheen8/BoooKit/utils"
)

// slotCapacityLimit caps the advisory availability check. It is not
// enforced during booking creation.
const slotCapacityLimit = 10

type ExperienceController struct {
	db shared_models.DBTX
}

// NewExperienceController creates a new instance of ExperienceController.
func NewExperienceController(db shared_models.DBTX) *ExperienceController {
	return &ExperienceController{db: db}
}

// GetAllExperiences handles GET /api/experiences with an optional search
// term matched case-insensitively against name, description, location and
// category.
func (ec *ExperienceController) GetAllExperiences(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	experiences, err := experience_models.GetAllExperiences(c.Request.Context(), ec.db, search)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch experiences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch experiences"})
		return
	}

	c.JSON(http.StatusOK, experiences)
}

// GetExperienceByID handles GET /api/experiences/:id.
func (ec *ExperienceController) GetExperienceByID(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}

	experience, err := experience_models.GetExperienceByID(c.Request.Context(), ec.db, id)
	if err != nil {
		if errors.Is(err, utils.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch experience %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch experience"})
		return
	}

	c.JSON(http.StatusOK, experience)
}

// CheckSlotAvailability handles GET /api/experiences/:id/availability.
// The result is advisory only: nothing stops two concurrent bookings for
// the same slot from both succeeding.
func (ec *ExperienceController) CheckSlotAvailability(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	slotTime := strings.TrimSpace(c.Query("time"))
	if date == "" || slotTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time query parameters are required"})
		return
	}

	count, err := booking_models.CountBookingsForSlot(c.Request.Context(), ec.db, id, date, slotTime)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to check slot availability: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": count < slotCapacityLimit})
}
