package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAlreadyReviewed  = errors.New("user already reviewed this stall")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type Review struct {
	ID        uint      `gorm:"primaryKey"`
	StallID   uint      `gorm:"not null;uniqueIndex:idx_reviews_stall_user"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_stall_user"`
	Rating    int       `gorm:"not null"`
	Comment   string
	CreatedAt time.Time `gorm:"not null"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey"`
	StallID   uint      `gorm:"not null;uniqueIndex:idx_favorites_stall_user"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_stall_user"`
	CreatedAt time.Time `gorm:"not null"`
}

type Report struct {
	ID        uint      `gorm:"primaryKey"`
	StallID   uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null"`
	Reason    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// RatingAggregate is the per-stall rollup shown on listing cards.
type RatingAggregate struct {
	StallID     uint
	AvgRating   float64
	ReviewCount int
}

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

func (d *ReviewDAO) InsertReview(ctx context.Context, review Review) (Review, error) {
	result := d.db.WithContext(ctx).Create(&review)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Review{}, ErrAlreadyReviewed
		}

		return Review{}, result.Error
	}

	return review, nil
}

func (d *ReviewDAO) FindReviewsByStallID(ctx context.Context, stallID uint) ([]Review, error) {
	var reviews []Review

	result := d.db.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("created_at DESC").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// AggregateRatings rolls up average rating and review count per stall.
// Stalls without reviews are absent from the map.
func (d *ReviewDAO) AggregateRatings(ctx context.Context, stallIDs []uint) (map[uint]RatingAggregate, error) {
	if len(stallIDs) == 0 {
		return map[uint]RatingAggregate{}, nil
	}

	var rows []RatingAggregate
	result := d.db.WithContext(ctx).
		Model(&Review{}).
		Select("stall_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Where("stall_id IN ?", stallIDs).
		Group("stall_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	aggregates := make(map[uint]RatingAggregate, len(rows))
	for _, row := range rows {
		aggregates[row.StallID] = row
	}

	return aggregates, nil
}

func (d *ReviewDAO) InsertFavorite(ctx context.Context, favorite Favorite) (Favorite, error) {
	result := d.db.WithContext(ctx).Create(&favorite)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			// Toggling an existing favorite is a no-op on insert.
			return d.findFavorite(ctx, favorite.StallID, favorite.UserID)
		}

		return Favorite{}, result.Error
	}

	return favorite, nil
}

func (d *ReviewDAO) DeleteFavorite(ctx context.Context, stallID, userID uint) error {
	result := d.db.WithContext(ctx).
		Where("stall_id = ? AND user_id = ?", stallID, userID).
		Delete(&Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func (d *ReviewDAO) FindFavoritesByUserID(ctx context.Context, userID uint) ([]Favorite, error) {
	var favorites []Favorite

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}

	return favorites, nil
}

func (d *ReviewDAO) findFavorite(ctx context.Context, stallID, userID uint) (Favorite, error) {
	var favorite Favorite

	result := d.db.WithContext(ctx).
		First(&favorite, "stall_id = ? AND user_id = ?", stallID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Favorite{}, ErrFavoriteNotFound
		}

		return Favorite{}, result.Error
	}

	return favorite, nil
}

func (d *ReviewDAO) InsertReport(ctx context.Context, report Report) (Report, error) {
	result := d.db.WithContext(ctx).Create(&report)
	if result.Error != nil {
		return Report{}, result.Error
	}

	return report, nil
}
