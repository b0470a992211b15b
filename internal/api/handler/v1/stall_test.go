package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/api/middleware"
	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/service"
)

type fakeStallService struct {
	stalls    []domain.Stall
	sampled   bool
	submitted *service.StallDraft
	submitErr error
}

func (f *fakeStallService) ListStalls(context.Context, string, uint) ([]domain.Stall, bool, error) {
	return f.stalls, f.sampled, nil
}

func (f *fakeStallService) GetStall(_ context.Context, id uint) (domain.Stall, error) {
	for _, s := range f.stalls {
		if s.ID == id {
			return s, nil
		}
	}

	return domain.Stall{}, service.ErrStallNotFound
}

func (f *fakeStallService) ListStallsByUser(_ context.Context, userID uint) ([]domain.Stall, error) {
	var out []domain.Stall
	for _, s := range f.stalls {
		if s.UserID == userID {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeStallService) SubmitStall(_ context.Context, draft service.StallDraft, userID uint, _ *service.Photo) (domain.Stall, error) {
	if f.submitErr != nil {
		return domain.Stall{}, f.submitErr
	}
	if userID == 0 {
		return domain.Stall{}, service.ErrAuthRequired
	}

	f.submitted = &draft

	return domain.Stall{ID: 99, NameBn: draft.NameBn, Status: domain.StallStatusPending, UserID: userID}, nil
}

func (f *fakeStallService) ModerateStall(_ context.Context, id uint, status string) (domain.Stall, error) {
	for _, s := range f.stalls {
		if s.ID == id {
			s.Status = status

			return s, nil
		}
	}

	return domain.Stall{}, service.ErrStallNotFound
}

type fakeUserService struct {
	users map[uint]domain.User
}

func (f *fakeUserService) GetUser(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, service.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserService) UpdateProfile(_ context.Context, id uint, displayName, avatarURL string) (domain.User, error) {
	user, err := f.GetUser(context.Background(), id)
	if err != nil {
		return domain.User{}, err
	}

	user.DisplayName = displayName
	user.AvatarURL = avatarURL
	f.users[id] = user

	return user, nil
}

// asUser injects the user ID the way the JWT middleware does.
func asUser(userID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if userID > 0 {
			ctx.Set(middleware.ContextKeyUserID, userID)
		}
		ctx.Next()
	}
}

func newStallTestRouter(svc *fakeStallService, uSvc *fakeUserService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewStallHandler(svc, uSvc)

	router := gin.New()
	router.Use(asUser(userID))
	router.GET("/stalls", h.HandleListStalls)
	router.GET("/stalls/:stallID", h.HandleGetStall)
	router.POST("/stalls", h.HandleCreateStall)
	router.PATCH("/stalls/:stallID/status", h.HandleModerateStall)

	return router
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestHandleListStalls(t *testing.T) {
	svc := &fakeStallService{
		stalls: []domain.Stall{
			{ID: 1, NameEn: "Sylheti Seven Layer Tea", NameBn: "সিলেটি সাত রঙ চা", Division: "Sylhet", District: "Sylhet"},
			{ID: 2, NameEn: "Rahim Chacha's Tong", NameBn: "রহিম চাচার টঙ", Division: "Dhaka", District: "Dhaka"},
		},
	}
	router := newStallTestRouter(svc, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stalls", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.StallListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.False(t, resp.Sample)
}

func TestHandleListStalls_SearchQuery(t *testing.T) {
	svc := &fakeStallService{
		stalls: []domain.Stall{
			{ID: 1, NameEn: "Sylheti Seven Layer Tea", Division: "Sylhet", District: "Sylhet"},
			{ID: 2, NameEn: "Rahim Chacha's Tong", Division: "Dhaka", District: "Dhaka"},
		},
	}
	router := newStallTestRouter(svc, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stalls?q=sylhet&lang=en", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.StallListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, uint(1), resp.Stalls[0].ID)
}

func TestHandleGetStall(t *testing.T) {
	svc := &fakeStallService{stalls: []domain.Stall{{ID: 1, NameEn: "Tong"}}}
	router := newStallTestRouter(svc, &fakeUserService{}, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stalls/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stalls/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stalls/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateStall(t *testing.T) {
	svc := &fakeStallService{}
	uSvc := &fakeUserService{users: map[uint]domain.User{7: {ID: 7, Role: domain.RoleUser}}}
	router := newStallTestRouter(svc, uSvc, 7)

	body, contentType := multipartForm(t, map[string]string{
		"name_bn":       "রহিম চাচার টঙ",
		"division":      "Dhaka",
		"district":      "Dhaka",
		"tea_price_min": "not-a-number",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stalls", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, svc.submitted)
	assert.Equal(t, "not-a-number", svc.submitted.TeaPriceMin, "coercion happens in the service, not the handler")

	var created domain.Stall
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, domain.StallStatusPending, created.Status)
}

func TestHandleCreateStall_Unauthenticated(t *testing.T) {
	svc := &fakeStallService{}
	router := newStallTestRouter(svc, &fakeUserService{users: map[uint]domain.User{}}, 0)

	body, contentType := multipartForm(t, map[string]string{
		"name_bn":  "টঙ",
		"division": "Dhaka",
		"district": "Dhaka",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stalls", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, svc.submitted, "nothing may be submitted without a user")
}

func TestHandleCreateStall_InvalidForm(t *testing.T) {
	uSvc := &fakeUserService{users: map[uint]domain.User{7: {ID: 7}}}
	router := newStallTestRouter(&fakeStallService{}, uSvc, 7)

	body, contentType := multipartForm(t, map[string]string{
		"name_bn":  "টঙ",
		"division": "West Bengal",
		"district": "Kolkata",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stalls", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleModerateStall(t *testing.T) {
	svc := &fakeStallService{stalls: []domain.Stall{{ID: 1, Status: domain.StallStatusPending}}}
	uSvc := &fakeUserService{users: map[uint]domain.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		2: {ID: 2, Role: domain.RoleUser},
	}}

	t.Run("admin approves", func(t *testing.T) {
		router := newStallTestRouter(svc, uSvc, 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/stalls/1/status", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		router := newStallTestRouter(svc, uSvc, 2)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/stalls/1/status", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		router := newStallTestRouter(svc, uSvc, 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/stalls/1/status", strings.NewReader(`{"status":"published"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
