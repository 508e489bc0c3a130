package response

import (
	"time"

	"folio-api/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type RequestResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	ContactPlatform string    `json:"contactPlatform"`
	Reason          string    `json:"reason"`
	SubReason       string    `json:"subReason,omitempty"`
	OtherDetail     string    `json:"otherDetail,omitempty"`
	Location        string    `json:"location"`
	IsMultiDay      bool      `json:"isMultiDay"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate,omitempty"`
	StartTime       string    `json:"startTime,omitempty"`
	EndTime         string    `json:"endTime,omitempty"`
	TimeLabel       string    `json:"timeLabel"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromRequest maps the flat fields off the entity's getters via copier
// and fills the derived ones by hand.
func FromRequest(r *booking.Request) *RequestResponse {
	resp := &RequestResponse{}
	_ = copier.Copy(resp, r)

	resp.ID = r.ID().String()
	resp.ContactPlatform = r.Platform()
	resp.TimeLabel = r.TimeLabel()
	resp.CreatedAt = r.CreatedAt()

	w := r.Window()
	resp.IsMultiDay = w.MultiDay
	resp.StartDate = w.StartDate.String()
	if w.MultiDay {
		resp.EndDate = w.EndDate.String()
	} else {
		resp.StartTime = w.StartTime.String()
		resp.EndTime = w.EndTime.String()
	}
	return resp
}

func FromRequests(reqs []*booking.Request) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromRequest(r))
	}
	return out
}
