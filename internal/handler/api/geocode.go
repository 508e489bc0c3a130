package api

import (
	"net/http"

	resdto "folio-api/internal/handler/dto/response"
	"folio-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GeocodeHandler struct {
	geocodeUseCase usecase.GeocodeUseCase
}

func NewGeocodeHandler(geocodeUseCase usecase.GeocodeUseCase) *GeocodeHandler {
	return &GeocodeHandler{geocodeUseCase: geocodeUseCase}
}

// @Summary Forward geocoding
// @Description Free-text location search; upstream failures return an empty list
// @Tags geocode
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} resdto.GeocodeResult
// @Router /geocode/search [get]
func (h *GeocodeHandler) Search(c *gin.Context) {
	results := h.geocodeUseCase.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, resdto.FromGeocodeResults(results))
}

// @Summary Reverse geocoding
// @Description Resolve coordinates to a display name; failures return an empty object
// @Tags geocode
// @Produce json
// @Param lat query string true "Latitude"
// @Param lon query string true "Longitude"
// @Success 200 {object} resdto.GeocodeResult
// @Router /geocode/reverse [get]
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	result, ok := h.geocodeUseCase.Reverse(c.Request.Context(), c.Query("lat"), c.Query("lon"))
	if !ok {
		c.JSON(http.StatusOK, resdto.GeocodeResult{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGeocodeResult(result))
}
