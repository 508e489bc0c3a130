package api

import (
	"errors"
	"net/http"

	reqdto "folio-api/internal/handler/dto/request"
	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availability usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Update the availability window
// @Description Update the window under edit; returns the immediate status (checking until the debounce fires)
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityWindowRequest true "Window fields"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/window [put]
func (h *AvailabilityHandler) UpdateWindow(c *gin.Context) {
	var req reqdto.AvailabilityWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	w, err := req.ToWindow()
	if err != nil {
		if errors.Is(err, errs.ErrInvalidDate) || errors.Is(err, errs.ErrInvalidTimeSlot) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date or time format",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	status, msg := h.availability.UpdateWindow(middleware.GetClientID(c), w)
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Status:  string(status),
		Message: msg,
	})
}

// @Summary Current availability status
// @Description Return the caller's current check status and message
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /availability [get]
func (h *AvailabilityHandler) Status(c *gin.Context) {
	status, msg := h.availability.Status(middleware.GetClientID(c))
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Status:  string(status),
		Message: msg,
	})
}
