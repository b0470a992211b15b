package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/geocoder"
	"github.com/tongmap/tong-api/internal/repository"
	"github.com/tongmap/tong-api/internal/sample"
)

var (
	ErrStallNotFound = repository.ErrStallNotFound
	ErrAuthRequired  = errors.New("authentication required")
	ErrInvalidStatus = errors.New("invalid stall status")
)

// Defaults applied when numeric form input does not parse. Malformed
// text never aborts a submission.
const (
	DefaultTeaPriceMin = 10
	DefaultTeaPriceMax = 30

	// Fallback coordinate near the capital, used when no usable
	// coordinate accompanies a submission.
	FallbackLat = 23.8103
	FallbackLng = 90.4125
)

type StallRepository interface {
	Create(ctx context.Context, stall domain.Stall) (domain.Stall, error)
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
	FindVisible(ctx context.Context, division string, viewerID uint) ([]domain.Stall, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Stall, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Stall, error)
	AttachImage(ctx context.Context, stallID uint, imageURL string) (domain.StallImage, error)
}

type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) geocoder.Result
}

type BlobStore interface {
	Save(key string, r io.Reader) (string, error)
}

// StallDraft is the submission form as the user typed it. Numeric
// fields stay text until coercion so bad input can fall back to the
// documented defaults instead of failing the write.
type StallDraft struct {
	NameBn        string
	NameEn        string
	OwnerName     string
	Phone         string
	Division      string
	District      string
	Upazila       string
	Lat           string
	Lng           string
	OpenTime      string
	CloseTime     string
	DescriptionBn string
	DescriptionEn string
	TeaPriceMin   string
	TeaPriceMax   string
	Facilities    []string
}

// Photo is an optional image attachment accompanying a submission.
type Photo struct {
	Filename string
	Content  io.Reader
}

type StallService struct {
	repo     StallRepository
	geocoder Geocoder
	store    BlobStore
	cache    *stallCache
}

func NewStallService(repo StallRepository, geo Geocoder, store BlobStore) *StallService {
	return &StallService{
		repo:     repo,
		geocoder: geo,
		store:    store,
		cache:    newStallCache(),
	}
}

// ListStalls returns the visible stall collection for a viewer,
// optionally narrowed by division, through the read-through cache.
// When the store has no matching rows the built-in sample dataset is
// returned instead, flagged by the second return value.
func (s *StallService) ListStalls(ctx context.Context, division string, viewerID uint) ([]domain.Stall, bool, error) {
	key := stallCacheKey(division, viewerID)
	if stalls, ok := s.cache.get(key); ok {
		return s.withSampleFallback(division, stalls)
	}

	stalls, err := s.repo.FindVisible(ctx, division, viewerID)
	if err != nil {
		return nil, false, fmt.Errorf("s.repo.FindVisible -> %w", err)
	}

	s.cache.set(key, stalls)

	return s.withSampleFallback(division, stalls)
}

func (s *StallService) withSampleFallback(division string, stalls []domain.Stall) ([]domain.Stall, bool, error) {
	if len(stalls) == 0 {
		return sample.ByDivision(division), true, nil
	}

	return stalls, false, nil
}

// SearchStalls narrows an already-fetched collection by case-insensitive
// substring match against the locale-appropriate name and the
// concatenated location fields. An empty query matches everything.
func SearchStalls(stalls []domain.Stall, query, lang string) []domain.Stall {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return stalls
	}

	out := make([]domain.Stall, 0, len(stalls))
	for _, stall := range stalls {
		haystack := strings.ToLower(stall.LocalizedName(lang) + " " +
			stall.Division + " " + stall.District + " " + stall.Upazila)
		if strings.Contains(haystack, query) {
			out = append(out, stall)
		}
	}

	return out
}

func (s *StallService) GetStall(ctx context.Context, id uint) (domain.Stall, error) {
	stall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stall, nil
}

func (s *StallService) ListStallsByUser(ctx context.Context, userID uint) ([]domain.Stall, error) {
	stalls, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return stalls, nil
}

// SubmitStall runs the submission workflow:
//
//  1. requires an authenticated user, otherwise no write happens,
//  2. best-effort reverse geocoding fills blank admin fields when a
//     coordinate was supplied; failures are swallowed,
//  3. inserts the stall row with coercion fallbacks for numeric text,
//  4. best-effort photo upload plus image row; a failure here leaves
//     the committed stall intact and photoless,
//  5. invalidates the listing cache after the commit.
func (s *StallService) SubmitStall(ctx context.Context, draft StallDraft, userID uint, photo *Photo) (domain.Stall, error) {
	if userID == 0 {
		return domain.Stall{}, ErrAuthRequired
	}

	lat, latOK := parseCoord(draft.Lat)
	lng, lngOK := parseCoord(draft.Lng)
	hasCoordinate := latOK && lngOK
	if !hasCoordinate {
		lat, lng = FallbackLat, FallbackLng
	}

	if hasCoordinate {
		s.enrichLocation(ctx, &draft, lat, lng)
	}

	stall := domain.Stall{
		NameBn:        draft.NameBn,
		NameEn:        draft.NameEn,
		OwnerName:     draft.OwnerName,
		Phone:         draft.Phone,
		Division:      draft.Division,
		District:      draft.District,
		Upazila:       draft.Upazila,
		Lat:           lat,
		Lng:           lng,
		OpenTime:      draft.OpenTime,
		CloseTime:     draft.CloseTime,
		DescriptionBn: draft.DescriptionBn,
		DescriptionEn: draft.DescriptionEn,
		TeaPriceMin:   coerceInt(draft.TeaPriceMin, DefaultTeaPriceMin),
		TeaPriceMax:   coerceInt(draft.TeaPriceMax, DefaultTeaPriceMax),
		Facilities:    draft.Facilities,
		Status:        domain.StallStatusPending,
		UserID:        userID,
	}

	created, err := s.repo.Create(ctx, stall)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if photo != nil {
		s.attachPhoto(ctx, &created, photo)
	}

	// Invalidate only after the row is committed so concurrent readers
	// never observe a torn state.
	s.cache.invalidate()

	return created, nil
}

// enrichLocation pre-fills blank admin fields from a reverse-geocoding
// lookup. The lookup is advisory: failures and regions outside the
// division taxonomy leave the draft untouched.
func (s *StallService) enrichLocation(ctx context.Context, draft *StallDraft, lat, lng float64) {
	if draft.Division != "" && draft.District != "" && draft.Upazila != "" {
		return
	}

	result := s.geocoder.Reverse(ctx, lat, lng)
	if !result.Found {
		return
	}

	if draft.Division == "" && domain.IsValidDivision(result.Placement.Division) {
		draft.Division = result.Placement.Division
	}
	if draft.District == "" && result.Placement.District != "" {
		draft.District = result.Placement.District
	}
	if draft.Upazila == "" && result.Placement.Upazila != "" {
		draft.Upazila = result.Placement.Upazila
	}
}

// attachPhoto uploads the photo and records the image row. Neither
// failure rolls back the stall; the listing simply has no photo.
func (s *StallService) attachPhoto(ctx context.Context, stall *domain.Stall, photo *Photo) {
	key := fmt.Sprintf("%d/%d-%s%s",
		stall.ID,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(photo.Filename)),
	)

	url, err := s.store.Save(key, photo.Content)
	if err != nil {
		zap.L().Warn("stall photo upload failed, keeping stall without photo",
			zap.Uint("stall_id", stall.ID), zap.Error(err))

		return
	}

	image, err := s.repo.AttachImage(ctx, stall.ID, url)
	if err != nil {
		zap.L().Warn("stall image row insert failed, keeping stall without photo",
			zap.Uint("stall_id", stall.ID), zap.Error(err))

		return
	}

	stall.ImageURL = image.ImageURL
	stall.Images = append(stall.Images, image)
}

// ModerateStall moves a stall through the moderation lifecycle and
// invalidates the listing cache so the change is visible immediately.
func (s *StallService) ModerateStall(ctx context.Context, id uint, status string) (domain.Stall, error) {
	switch status {
	case domain.StallStatusPending, domain.StallStatusApproved, domain.StallStatusRejected:
	default:
		return domain.Stall{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	s.cache.invalidate()

	return updated, nil
}

// InvalidateCache forces the next read for every filter to re-fetch.
func (s *StallService) InvalidateCache() {
	s.cache.invalidate()
}

func coerceInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return fallback
	}

	return n
}

func parseCoord(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
