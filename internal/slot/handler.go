package slot

import (
	"errors"
	"net/http"

	"gymbook/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	registry Registry
}

func NewHandler(registry Registry) *Handler {
	return &Handler{registry: registry}
}

// CreateTimeSlot godoc
// @Summary      Add time slot
// @Description  Creates a bookable time slot for the authenticated gym.
// @Tags         slots
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTimeSlotRequest  true  "Time slot data"
// @Success      201      {object}  TimeSlot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /dashboard/slots [post]
func (h *Handler) CreateTimeSlot(c *gin.Context) {
	gymID, exists := auth.GetGymID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym not authenticated"})
		return
	}

	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.registry.CreateSlot(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time slot"})
		return
	}

	c.JSON(http.StatusCreated, s)
}

// ListTimeSlots godoc
// @Summary      List gym time slots
// @Description  Returns all time slots of the authenticated gym, historical included.
// @Tags         slots
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   TimeSlot
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /dashboard/slots [get]
func (h *Handler) ListTimeSlots(c *gin.Context) {
	gymID, exists := auth.GetGymID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym not authenticated"})
		return
	}

	slots, err := h.registry.ListByGym(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}
