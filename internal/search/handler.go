package search

import (
	"errors"
	"net/http"

	"gymbook/internal/slot"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SearchGyms godoc
// @Summary      Search gyms
// @Description  Finds gyms by location substring (case-insensitive) with their
// @Description  available slots for the given date.
// @Tags         search
// @Produce      json
// @Param        location  query     string  true  "Location substring"
// @Param        date      query     string  true  "Date (YYYY-MM-DD)"
// @Success      200       {array}   Result
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /search [get]
func (h *Handler) SearchGyms(c *gin.Context) {
	location := c.Query("location")
	date := c.Query("date")

	if location == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and date query params are required"})
		return
	}

	results, err := h.service.SearchGyms(c.Request.Context(), location, date)
	if err != nil {
		if errors.Is(err, slot.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search gyms"})
		return
	}

	c.JSON(http.StatusOK, results)
}
