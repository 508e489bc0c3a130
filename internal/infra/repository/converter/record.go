package converter

import (
	"time"

	"folio-api/internal/domain/booking"
	"folio-api/internal/domain/diary"
	"folio-api/internal/domain/place"
	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Stored record shapes. Field names keep the original storage schema so
// existing records stay readable.

type RequestRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Contact         string `json:"contact"`
	ContactPlatform string `json:"contactPlatform"`
	Reason          string `json:"reason"`
	SubReason       string `json:"subReason,omitempty"`
	OtherDetail     string `json:"otherDetail,omitempty"`
	Location        string `json:"location"`
	IsMultiDay      bool   `json:"isMultiDay"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	CreatedAt       int64  `json:"createdAt"` // unix ms
}

func RequestToRecord(r *booking.Request) RequestRecord {
	w := r.Window()
	rec := RequestRecord{
		ID:              r.ID().String(),
		Name:            r.Name(),
		Contact:         r.Contact(),
		ContactPlatform: r.Platform(),
		Reason:          r.Reason(),
		SubReason:       r.SubReason(),
		OtherDetail:     r.OtherDetail(),
		Location:        r.Location(),
		IsMultiDay:      w.MultiDay,
		StartDate:       w.StartDate.String(),
		CreatedAt:       r.CreatedAt().UnixMilli(),
	}
	if w.MultiDay {
		rec.EndDate = w.EndDate.String()
	} else {
		rec.StartTime = w.StartTime.String()
		rec.EndTime = w.EndTime.String()
	}
	return rec
}

func RequestFromRecord(rec RequestRecord) *booking.Request {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		id = uuid.Nil
	}
	w := schedule.Window{MultiDay: rec.IsMultiDay}
	w.StartDate, _ = timeutil.ParseLocalDate(rec.StartDate)
	if rec.IsMultiDay {
		w.EndDate, _ = timeutil.ParseLocalDate(rec.EndDate)
	} else {
		w.StartTime, _ = timeutil.ParseClockTime(rec.StartTime)
		w.EndTime, _ = timeutil.ParseClockTime(rec.EndTime)
	}
	return booking.Reconstruct(
		id,
		rec.Name, rec.Contact, rec.ContactPlatform,
		rec.Reason, rec.SubReason, rec.OtherDetail,
		rec.Location, w,
		time.UnixMilli(rec.CreatedAt),
	)
}

type DiaryRecord struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Likes     int    `json:"likes"`
	Date      string `json:"date"`
}

func DiaryToRecord(e *diary.Entry) DiaryRecord {
	return DiaryRecord{
		ID:        e.ID().String(),
		Content:   e.Content(),
		MediaType: string(e.MediaType()),
		MediaURL:  e.MediaURL(),
		Likes:     e.Likes(),
		Date:      e.Date().String(),
	}
}

func DiaryFromRecord(rec DiaryRecord) *diary.Entry {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		id = uuid.Nil
	}
	date, _ := timeutil.ParseLocalDate(rec.Date)
	mt := diary.MediaType(rec.MediaType)
	if !mt.Valid() {
		mt = diary.MediaNone
	}
	return diary.Reconstruct(id, rec.Content, mt, rec.MediaURL, rec.Likes, date)
}

type PlaceRecord struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Review string   `json:"review,omitempty"`
	Rate   int      `json:"rate"`
	Image  string   `json:"image,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Likes  int      `json:"likes"`
}

func PlaceToRecord(p *place.Place) PlaceRecord {
	return PlaceRecord{
		ID:     p.ID().String(),
		Name:   p.Name(),
		Review: p.Review(),
		Rate:   p.Rate(),
		Image:  p.Image(),
		Tags:   p.Tags(),
		Likes:  p.Likes(),
	}
}

func PlaceFromRecord(rec PlaceRecord) *place.Place {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		id = uuid.Nil
	}
	return place.Reconstruct(id, rec.Name, rec.Review, rec.Rate, rec.Image, rec.Tags, rec.Likes)
}
