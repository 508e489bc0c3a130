package request

import "folio-api/internal/usecase"

type CreateRequestRequest struct {
	Name            string `json:"name" binding:"required"`
	Contact         string `json:"contact" binding:"required"`
	ContactPlatform string `json:"contactPlatform" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	SubReason       string `json:"subReason,omitempty"`
	OtherDetail     string `json:"otherDetail,omitempty"`
	Location        string `json:"location" binding:"required"`
	IsMultiDay      bool   `json:"isMultiDay"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
}

func (r CreateRequestRequest) ToInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		Name:            r.Name,
		Contact:         r.Contact,
		ContactPlatform: r.ContactPlatform,
		Reason:          r.Reason,
		SubReason:       r.SubReason,
		OtherDetail:     r.OtherDetail,
		Location:        r.Location,
		IsMultiDay:      r.IsMultiDay,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
	}
}
