package api

import (
	"errors"
	"net/http"

	"folio-api/internal/domain/diary"
	"folio-api/internal/domain/place"
	reqdto "folio-api/internal/handler/dto/request"
	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/handler/middleware"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	diaryUseCase usecase.DiaryUseCase
	placeUseCase usecase.PlaceUseCase
}

func NewContentHandler(diaryUseCase usecase.DiaryUseCase, placeUseCase usecase.PlaceUseCase) *ContentHandler {
	return &ContentHandler{
		diaryUseCase: diaryUseCase,
		placeUseCase: placeUseCase,
	}
}

// @Summary List diary entries
// @Description Public diary feed, newest first
// @Tags diary
// @Produce json
// @Success 200 {array} resdto.DiaryResponse
// @Router /diary [get]
func (h *ContentHandler) ListDiary(c *gin.Context) {
	entries, err := h.diaryUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDiaryEntries(entries))
}

// @Summary Post a diary entry
// @Description Create a diary entry (admin)
// @Tags diary
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDiaryRequest true "Diary entry"
// @Success 201 {object} resdto.DiaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /diary [post]
func (h *ContentHandler) PostDiary(c *gin.Context) {
	var req reqdto.CreateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entry, err := h.diaryUseCase.Post(c.Request.Context(), req.Content, diary.MediaType(req.MediaType), req.MediaURL)
	if err != nil {
		switch {
		case errors.Is(err, diary.ErrMissingContent), errors.Is(err, diary.ErrUnknownMediaType):
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
	c.JSON(http.StatusCreated, resdto.FromDiaryEntry(entry))
}

// @Summary Like a diary entry
// @Description Count a like once per client; repeats are no-ops
// @Tags diary
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /diary/{id}/like [post]
func (h *ContentHandler) LikeDiary(c *gin.Context) {
	err := h.diaryUseCase.Like(c.Request.Context(), middleware.GetClientID(c), c.Param("id"))
	if err != nil {
		h.respondLikeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List favorite places
// @Description Favorite places, optionally filtered by name substring
// @Tags places
// @Produce json
// @Param search query string false "Name filter"
// @Success 200 {array} resdto.PlaceResponse
// @Router /places [get]
func (h *ContentHandler) ListPlaces(c *gin.Context) {
	places, err := h.placeUseCase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlaces(places))
}

// @Summary Add a favorite place
// @Description Create a place card (admin)
// @Tags places
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePlaceRequest true "Place"
// @Success 201 {object} resdto.PlaceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /places [post]
func (h *ContentHandler) AddPlace(c *gin.Context) {
	var req reqdto.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.placeUseCase.Add(c.Request.Context(), req.Name, req.Review, req.Rate, req.Image, req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, place.ErrMissingName), errors.Is(err, place.ErrInvalidRate):
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
	c.JSON(http.StatusCreated, resdto.FromPlace(created))
}

// @Summary Like a place
// @Description Count a like once per client; repeats are no-ops
// @Tags places
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /places/{id}/like [post]
func (h *ContentHandler) LikePlace(c *gin.Context) {
	err := h.placeUseCase.Like(c.Request.Context(), middleware.GetClientID(c), c.Param("id"))
	if err != nil {
		h.respondLikeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) respondLikeErr(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
