package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/geocoder"
)

type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) geocoder.Result
}

type GeocodeHandler struct {
	geo ReverseGeocoder
}

func NewGeocodeHandler(geo ReverseGeocoder) *GeocodeHandler {
	return &GeocodeHandler{
		geo: geo,
	}
}

// HandleReverseGeocode godoc
// @Summary      Reverse geocode a coordinate
// @Description  Best-effort lookup to pre-fill division/district/upazila from a map click. A failed lookup returns found=false, never an error.
// @Tags         geocode
// @Produce      json
// @Param        lat  query     number  true  "latitude"
// @Param        lng  query     number  true  "longitude"
// @Success      200  {object}  geocoder.Result
// @Failure      400  {object}  response.Err
// @Router       /geocode/reverse [get]
func (h *GeocodeHandler) HandleReverseGeocode(ctx *gin.Context) {
	lat, latErr := strconv.ParseFloat(ctx.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(ctx.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("lat and lng must be decimal degrees")))

		return
	}

	ctx.JSON(http.StatusOK, h.geo.Reverse(ctx.Request.Context(), lat, lng))
}
