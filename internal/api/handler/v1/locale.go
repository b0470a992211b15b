package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/i18n"
)

type LocaleHandler struct{}

func NewLocaleHandler() *LocaleHandler {
	return &LocaleHandler{}
}

// HandleGetTranslations godoc
// @Summary      Get the UI string dictionary for a locale
// @Tags         locale
// @Produce      json
// @Param        lang  path      string  true  "locale (bn or en)"
// @Success      200  {object}  response.TranslationsResponse
// @Router       /translations/{lang} [get]
func (h *LocaleHandler) HandleGetTranslations(ctx *gin.Context) {
	// Unknown locales fall back to the default rather than erroring.
	locale, _ := i18n.ParseLocale(ctx.Param("lang"))

	ctx.JSON(http.StatusOK, response.TranslationsResponse{
		Locale:       string(locale),
		Translations: i18n.Dict(locale),
	})
}

// HandleGetDivisions godoc
// @Summary      Get the division taxonomy
// @Tags         locale
// @Produce      json
// @Success      200  {object}  response.DivisionsResponse
// @Router       /divisions [get]
func (h *LocaleHandler) HandleGetDivisions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.DivisionsResponse{
		Divisions: domain.Divisions,
	})
}
