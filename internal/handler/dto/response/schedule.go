package response

import (
	"folio-api/internal/domain/schedule"
	"folio-api/internal/usecase"
)

type AvailabilityResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type DaySlotsResponse struct {
	Date      string   `json:"date"`
	BusySlots []string `json:"busySlots"`
	AllSlots  []string `json:"allSlots"`
}

type CalendarResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  []schedule.DayState `json:"days"`
}

type PickerStateResponse struct {
	Anchored  bool   `json:"anchored"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func FromPickerState(st usecase.PickerState) PickerStateResponse {
	resp := PickerStateResponse{Anchored: st.Anchored}
	if st.HasRange {
		resp.StartDate = st.Start.String()
		resp.EndDate = st.End.String()
	}
	return resp
}

func AllSlotStrings() []string {
	out := make([]string, 0, len(schedule.Slots))
	for _, s := range schedule.Slots {
		out = append(out, s)
	}
	return out
}
