package api

import (
	"errors"
	"net/http"

	"folio-api/internal/domain/booking"
	reqdto "folio-api/internal/handler/dto/request"
	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Submit a booking request
// @Description Validate the form, check the window against the busy map, enforce the submit cooldown, and append the request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRequestRequest true "Booking request form"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /requests [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.bookingUseCase.Submit(c.Request.Context(), middleware.GetClientID(c), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCooldownActive):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Please wait before sending another request",
			})
		case errors.Is(err, errs.ErrWindowNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "The requested time is not available",
			})
		case errors.Is(err, errs.ErrInvalidDate), errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date or time format",
			})
		case isBookingValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequest(created))
}

// @Summary List booking requests
// @Description Admin view of every received request, newest first
// @Tags requests
// @Produce json
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *BookingHandler) List(c *gin.Context) {
	reqs, err := h.bookingUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequests(reqs))
}

func isBookingValidationErr(err error) bool {
	for _, target := range []error{
		booking.ErrMissingName,
		booking.ErrMissingContact,
		booking.ErrMissingPlatform,
		booking.ErrMissingLocation,
		booking.ErrUnknownReason,
		booking.ErrMissingSubReason,
		booking.ErrUnknownSubReason,
		booking.ErrMissingDetail,
		booking.ErrIncompleteWindow,
		booking.ErrInvalidWindow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
