package repository

import (
	"context"
	"fmt"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository/dao"
)

var (
	ErrAlreadyReviewed  = dao.ErrAlreadyReviewed
	ErrFavoriteNotFound = dao.ErrFavoriteNotFound
)

type ReviewDAO interface {
	InsertReview(ctx context.Context, review dao.Review) (dao.Review, error)
	FindReviewsByStallID(ctx context.Context, stallID uint) ([]dao.Review, error)
	InsertFavorite(ctx context.Context, favorite dao.Favorite) (dao.Favorite, error)
	DeleteFavorite(ctx context.Context, stallID, userID uint) error
	FindFavoritesByUserID(ctx context.Context, userID uint) ([]dao.Favorite, error)
	InsertReport(ctx context.Context, report dao.Report) (dao.Report, error)
}

type ReviewRepository struct {
	dao ReviewDAO
}

func NewReviewRepository(dao ReviewDAO) *ReviewRepository {
	return &ReviewRepository{
		dao: dao,
	}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	created, err := r.dao.InsertReview(ctx, dao.Review{
		StallID: review.StallID,
		UserID:  review.UserID,
		Rating:  review.Rating,
		Comment: review.Comment,
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("r.dao.InsertReview -> %w", err)
	}

	return r.reviewDaoToDomain(created), nil
}

func (r *ReviewRepository) FindReviewsByStallID(ctx context.Context, stallID uint) ([]domain.Review, error) {
	found, err := r.dao.FindReviewsByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindReviewsByStallID -> %w", err)
	}

	reviews := make([]domain.Review, 0, len(found))
	for _, rev := range found {
		reviews = append(reviews, r.reviewDaoToDomain(rev))
	}

	return reviews, nil
}

func (r *ReviewRepository) CreateFavorite(ctx context.Context, stallID, userID uint) (domain.Favorite, error) {
	created, err := r.dao.InsertFavorite(ctx, dao.Favorite{
		StallID: stallID,
		UserID:  userID,
	})
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("r.dao.InsertFavorite -> %w", err)
	}

	return domain.Favorite{
		ID:        created.ID,
		StallID:   created.StallID,
		UserID:    created.UserID,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *ReviewRepository) DeleteFavorite(ctx context.Context, stallID, userID uint) error {
	if err := r.dao.DeleteFavorite(ctx, stallID, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteFavorite -> %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindFavoritesByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	found, err := r.dao.FindFavoritesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFavoritesByUserID -> %w", err)
	}

	favorites := make([]domain.Favorite, 0, len(found))
	for _, f := range found {
		favorites = append(favorites, domain.Favorite{
			ID:        f.ID,
			StallID:   f.StallID,
			UserID:    f.UserID,
			CreatedAt: f.CreatedAt,
		})
	}

	return favorites, nil
}

func (r *ReviewRepository) CreateReport(ctx context.Context, report domain.Report) (domain.Report, error) {
	created, err := r.dao.InsertReport(ctx, dao.Report{
		StallID: report.StallID,
		UserID:  report.UserID,
		Reason:  report.Reason,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("r.dao.InsertReport -> %w", err)
	}

	return domain.Report{
		ID:        created.ID,
		StallID:   created.StallID,
		UserID:    created.UserID,
		Reason:    created.Reason,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *ReviewRepository) reviewDaoToDomain(rev dao.Review) domain.Review {
	return domain.Review{
		ID:        rev.ID,
		StallID:   rev.StallID,
		UserID:    rev.UserID,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt,
	}
}
