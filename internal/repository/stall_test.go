package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository/dao"
)

var testDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, dao.InitTables(db))

	return db
}

func newTestStallRepository(t *testing.T) (*StallRepository, *ReviewRepository) {
	t.Helper()

	db := newTestDB(t)
	reviewDAO := dao.NewReviewDAO(db)

	return NewStallRepository(dao.NewStallDAO(db), reviewDAO), NewReviewRepository(reviewDAO)
}

func TestStallRepository_CreateRoundTrip(t *testing.T) {
	repo, _ := newTestStallRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Stall{
		NameBn:      "রহিম চাচার টঙ",
		NameEn:      "Rahim Chacha's Tong",
		Division:    "Dhaka",
		District:    "Dhaka",
		Lat:         23.7461,
		Lng:         90.3742,
		TeaPriceMin: 10,
		TeaPriceMax: 30,
		Facilities:  []string{domain.FacilitySeating},
		Status:      domain.StallStatusPending,
		UserID:      1,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Chacha's Tong", found.NameEn)
	assert.Equal(t, []string{domain.FacilitySeating}, found.Facilities)
	assert.Equal(t, domain.StallStatusPending, found.Status)
}

func TestStallRepository_FindVisibleEnrichment(t *testing.T) {
	repo, reviews := newTestStallRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.Stall{
		NameEn: "First Tong", NameBn: "প্রথম টঙ",
		Division: "Dhaka", District: "Dhaka",
		Status: domain.StallStatusApproved, UserID: 1,
		CreatedAt: time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	second, err := repo.Create(ctx, domain.Stall{
		NameEn: "Second Tong", NameBn: "দ্বিতীয় টঙ",
		Division: "Dhaka", District: "Dhaka",
		Status: domain.StallStatusApproved, UserID: 1,
		CreatedAt: time.Date(2025, time.August, 2, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = repo.AttachImage(ctx, first.ID, "http://x/tong.jpg")
	require.NoError(t, err)

	_, err = reviews.CreateReview(ctx, domain.Review{StallID: first.ID, UserID: 1, Rating: 5})
	require.NoError(t, err)
	_, err = reviews.CreateReview(ctx, domain.Review{StallID: first.ID, UserID: 2, Rating: 4})
	require.NoError(t, err)

	stalls, err := repo.FindVisible(ctx, "Dhaka", 0)
	require.NoError(t, err)
	require.Len(t, stalls, 2)

	assert.Equal(t, second.ID, stalls[0].ID, "newest first")

	enriched := stalls[1]
	assert.Equal(t, first.ID, enriched.ID)
	assert.Equal(t, "http://x/tong.jpg", enriched.ImageURL)
	assert.InDelta(t, 4.5, enriched.Rating, 1e-9)
	assert.Equal(t, 2, enriched.ReviewCount)

	bare := stalls[0]
	assert.Empty(t, bare.ImageURL)
	assert.Zero(t, bare.Rating)
	assert.Zero(t, bare.ReviewCount)
}

func TestStallRepository_UpdateStatus(t *testing.T) {
	repo, _ := newTestStallRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Stall{
		NameEn: "Tong", NameBn: "টঙ",
		Division: "Dhaka", District: "Dhaka",
		Status: domain.StallStatusPending, UserID: 1,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.StallStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.StallStatusApproved, updated.Status)

	_, err = repo.UpdateStatus(ctx, 999, domain.StallStatusApproved)
	assert.ErrorIs(t, err, ErrStallNotFound)
}
