package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository"
)

var (
	ErrAlreadyReviewed  = repository.ErrAlreadyReviewed
	ErrFavoriteNotFound = repository.ErrFavoriteNotFound
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)
	FindReviewsByStallID(ctx context.Context, stallID uint) ([]domain.Review, error)
	CreateFavorite(ctx context.Context, stallID, userID uint) (domain.Favorite, error)
	DeleteFavorite(ctx context.Context, stallID, userID uint) error
	FindFavoritesByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error)
	CreateReport(ctx context.Context, report domain.Report) (domain.Report, error)
}

// StallFinder is the slice of the stall service reviews need: reviews,
// favorites and reports all verify the stall exists first.
type StallFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Stall, error)
}

type ReviewService struct {
	repo   ReviewRepository
	stalls StallFinder
}

func NewReviewService(repo ReviewRepository, stalls StallFinder) *ReviewService {
	return &ReviewService{
		repo:   repo,
		stalls: stalls,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, ErrInvalidRating
	}

	if _, err := s.stalls.FindByID(ctx, review.StallID); err != nil {
		return domain.Review{}, fmt.Errorf("s.stalls.FindByID -> %w", err)
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.CreateReview -> %w", err)
	}

	return created, nil
}

func (s *ReviewService) GetReviews(ctx context.Context, stallID uint) ([]domain.Review, error) {
	reviews, err := s.repo.FindReviewsByStallID(ctx, stallID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindReviewsByStallID -> %w", err)
	}

	return reviews, nil
}

func (s *ReviewService) AddFavorite(ctx context.Context, stallID, userID uint) (domain.Favorite, error) {
	if _, err := s.stalls.FindByID(ctx, stallID); err != nil {
		return domain.Favorite{}, fmt.Errorf("s.stalls.FindByID -> %w", err)
	}

	favorite, err := s.repo.CreateFavorite(ctx, stallID, userID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("s.repo.CreateFavorite -> %w", err)
	}

	return favorite, nil
}

func (s *ReviewService) RemoveFavorite(ctx context.Context, stallID, userID uint) error {
	if err := s.repo.DeleteFavorite(ctx, stallID, userID); err != nil {
		return fmt.Errorf("s.repo.DeleteFavorite -> %w", err)
	}

	return nil
}

func (s *ReviewService) GetFavorites(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	favorites, err := s.repo.FindFavoritesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFavoritesByUserID -> %w", err)
	}

	return favorites, nil
}

func (s *ReviewService) ReportStall(ctx context.Context, report domain.Report) (domain.Report, error) {
	if _, err := s.stalls.FindByID(ctx, report.StallID); err != nil {
		return domain.Report{}, fmt.Errorf("s.stalls.FindByID -> %w", err)
	}

	created, err := s.repo.CreateReport(ctx, report)
	if err != nil {
		return domain.Report{}, fmt.Errorf("s.repo.CreateReport -> %w", err)
	}

	return created, nil
}
