package response

import (
	"folio-api/internal/domain/diary"
	"folio-api/internal/domain/place"

	"github.com/jinzhu/copier"
)

type DiaryResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Likes     int    `json:"likes"`
	Date      string `json:"date"`
}

func FromDiaryEntry(e *diary.Entry) *DiaryResponse {
	resp := &DiaryResponse{}
	_ = copier.Copy(resp, e)
	resp.ID = e.ID().String()
	resp.MediaType = string(e.MediaType())
	resp.Date = e.Date().String()
	return resp
}

func FromDiaryEntries(entries []*diary.Entry) []*DiaryResponse {
	out := make([]*DiaryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromDiaryEntry(e))
	}
	return out
}

type PlaceResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Review string   `json:"review,omitempty"`
	Rate   int      `json:"rate"`
	Image  string   `json:"image,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Likes  int      `json:"likes"`
}

func FromPlace(p *place.Place) *PlaceResponse {
	resp := &PlaceResponse{}
	_ = copier.Copy(resp, p)
	resp.ID = p.ID().String()
	return resp
}

func FromPlaces(places []*place.Place) []*PlaceResponse {
	out := make([]*PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, FromPlace(p))
	}
	return out
}
