package request

type CreateDiaryRequest struct {
	Content   string `json:"content" binding:"required"`
	MediaType string `json:"mediaType,omitempty"`
	MediaURL  string `json:"mediaUrl,omitempty"`
}

type CreatePlaceRequest struct {
	Name   string   `json:"name" binding:"required"`
	Review string   `json:"review,omitempty"`
	Rate   int      `json:"rate" binding:"required,min=1,max=5"`
	Image  string   `json:"image,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}
