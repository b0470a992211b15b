package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
)

func newLocaleTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewLocaleHandler()

	router := gin.New()
	router.GET("/translations/:lang", h.HandleGetTranslations)
	router.GET("/divisions", h.HandleGetDivisions)

	return router
}

func TestHandleGetTranslations(t *testing.T) {
	router := newLocaleTestRouter()

	cases := []struct {
		name           string
		lang           string
		expectedLocale string
		expectedApp    string
	}{
		{name: "bengali", lang: "bn", expectedLocale: "bn", expectedApp: "টংম্যাপ"},
		{name: "english", lang: "en", expectedLocale: "en", expectedApp: "TongMap"},
		{name: "unknown falls back to bengali", lang: "fr", expectedLocale: "bn", expectedApp: "টংম্যাপ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/translations/"+tc.lang, nil))

			require.Equal(t, http.StatusOK, w.Code)

			var resp response.TranslationsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedLocale, resp.Locale)
			assert.Equal(t, tc.expectedApp, resp.Translations["appName"])
		})
	}
}

func TestHandleGetDivisions(t *testing.T) {
	router := newLocaleTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/divisions", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.DivisionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Divisions, 8)
	assert.Equal(t, "Dhaka", resp.Divisions[0].Name)
	assert.Equal(t, "ঢাকা", resp.Divisions[0].LabelBn)
}
