package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tongmap/tong-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newAuthTestRouter(optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	auth := NewAuthenticator(testSigningKey)

	router := gin.New()
	if optional {
		router.Use(auth.OptionalJWT())
	} else {
		router.Use(auth.VerifyJWT())
	}
	router.GET("/whoami", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetUint(ContextKeyUserID)})
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := newAuthTestRouter(false)

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "test-agent")
	require.NoError(t, err)

	cases := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "valid token", header: "Bearer " + token, expectedCode: http.StatusOK},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "missing scheme", header: token, expectedCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedCode == http.StatusOK {
				assert.JSONEq(t, `{"user_id": 42}`, w.Body.String())
			}
		})
	}
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	router := newAuthTestRouter(false)

	token, err := jwthelper.GenerateToken([]byte("another-key"), 42, "test-agent")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalJWT(t *testing.T) {
	router := newAuthTestRouter(true)

	t.Run("anonymous passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 0}`, w.Body.String())
	})

	t.Run("valid token attaches user", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "test-agent")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 7}`, w.Body.String())
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 0}`, w.Body.String())
	})
}
