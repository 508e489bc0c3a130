package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	reqdto "folio-api/internal/handler/dto/request"
	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUseCase: scheduleUseCase}
}

// @Summary Toggle a busy slot
// @Description Flip one hourly slot on a date between busy and free (admin)
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleBusyRequest true "Date and slot"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /schedule/busy [post]
func (h *ScheduleHandler) ToggleBusy(c *gin.Context) {
	var req reqdto.ToggleBusyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	busy, err := h.scheduleUseCase.ToggleBusy(c.Request.Context(), req.Date, req.Slot)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DaySlotsResponse{
		Date:      req.Date,
		BusySlots: busy,
		AllSlots:  resdto.AllSlotStrings(),
	})
}

// @Summary Day slot view
// @Description Busy slots for a date plus the full hourly slot grid
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/busy [get]
func (h *ScheduleHandler) DaySlots(c *gin.Context) {
	date := c.Query("date")
	busy, err := h.scheduleUseCase.DaySlots(c.Request.Context(), date)
	if err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DaySlotsResponse{
		Date:      date,
		BusySlots: busy,
		AllSlots:  resdto.AllSlotStrings(),
	})
}

// @Summary Calendar day states
// @Description Per-day visual state (start/end/in-range) of a month for the caller's picker session
// @Tags schedule
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/calendar [get]
func (h *ScheduleHandler) Calendar(c *gin.Context) {
	year, month, ok := parseMonth(c.Query("month"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month, expected YYYY-MM",
		})
		return
	}

	days := h.scheduleUseCase.Calendar(middleware.GetClientID(c), year, month)
	c.JSON(http.StatusOK, resdto.CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	})
}

// @Summary Picker day click
// @Description First click anchors the range, second click commits it
// @Tags schedule
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /schedule/picker/click [post]
func (h *ScheduleHandler) PickerClick(c *gin.Context) {
	var req reqdto.PickerClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.scheduleUseCase.Click(middleware.GetClientID(c), req.Date); err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Picker hover preview
// @Description Update the hover endpoint while a range is anchored
// @Tags schedule
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /schedule/picker/hover [post]
func (h *ScheduleHandler) PickerHover(c *gin.Context) {
	var req reqdto.PickerClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.scheduleUseCase.Hover(middleware.GetClientID(c), req.Date); err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel picker selection
// @Description Drop an in-progress anchor without committing
// @Tags schedule
// @Success 204 "No Content"
// @Router /schedule/picker [delete]
func (h *ScheduleHandler) PickerCancel(c *gin.Context) {
	h.scheduleUseCase.CancelPicker(middleware.GetClientID(c))
	c.Status(http.StatusNoContent)
}

// @Summary Picker state
// @Description Whether a range is anchored and the committed endpoints
// @Tags schedule
// @Produce json
// @Success 200 {object} resdto.PickerStateResponse
// @Router /schedule/picker [get]
func (h *ScheduleHandler) PickerState(c *gin.Context) {
	st := h.scheduleUseCase.State(middleware.GetClientID(c))
	c.JSON(http.StatusOK, resdto.FromPickerState(st))
}

// @Summary Select a time slot
// @Description Commit an hourly start slot; the end time is derived one hour later
// @Tags schedule
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /schedule/picker/slot [post]
func (h *ScheduleHandler) SelectSlot(c *gin.Context) {
	var req reqdto.SlotSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.scheduleUseCase.SelectSlot(middleware.GetClientID(c), req.Slot); err != nil {
		h.respondScheduleErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) respondScheduleErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	case errors.Is(err, errs.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown time slot",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseMonth(s string) (int, time.Month, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return year, time.Month(m), true
}
