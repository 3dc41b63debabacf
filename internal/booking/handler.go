package booking

import (
	"errors"
	"net/http"

	"gymbook/internal/auth"
	"gymbook/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine Engine
}

func NewHandler(engine Engine) *Handler {
	return &Handler{engine: engine}
}

type DashboardResponse struct {
	Bookings  []Booking       `json:"bookings"`
	TimeSlots []slot.TimeSlot `json:"time_slots"`
}

// BookSession godoc
// @Summary      Book a session
// @Description  Reserves a time slot and creates a confirmed booking. Losing a
// @Description  race for the last spot returns 409, not an error payload.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      BookRequest  true  "Booking data"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /book [post]
func (h *Handler) BookSession(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.engine.ReserveSession(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Time slot not found"})
		case errors.Is(err, ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Time slot is no longer available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book session"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels a booking of the authenticated gym and releases its slot.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      401        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /dashboard/bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	gymID, exists := auth.GetGymID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym not authenticated"})
		return
	}

	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	b, err := h.engine.CancelBooking(c.Request.Context(), gymID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// Dashboard godoc
// @Summary      Gym dashboard
// @Description  Returns all bookings and time slots of the authenticated gym.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	gymID, exists := auth.GetGymID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym not authenticated"})
		return
	}

	bookings, err := h.engine.ListBookingsForGym(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	slots, err := h.engine.ListSlotsForGym(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch time slots"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Bookings:  bookings,
		TimeSlots: slots,
	})
}
