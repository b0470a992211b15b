package repository

import (
	"context"
	"fmt"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository/dao"
)

var (
	ErrStallNotFound = dao.ErrStallNotFound
)

type StallDAO interface {
	Insert(ctx context.Context, stall dao.Stall) (dao.Stall, error)
	FindByID(ctx context.Context, id uint) (dao.Stall, error)
	FindVisible(ctx context.Context, division string, viewerID uint) ([]dao.Stall, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Stall, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Stall, error)
	InsertImage(ctx context.Context, image dao.StallImage) (dao.StallImage, error)
	FirstImageURLs(ctx context.Context, stallIDs []uint) (map[uint]string, error)
}

type RatingDAO interface {
	AggregateRatings(ctx context.Context, stallIDs []uint) (map[uint]dao.RatingAggregate, error)
}

type StallRepository struct {
	dao     StallDAO
	ratings RatingDAO
}

func NewStallRepository(dao StallDAO, ratings RatingDAO) *StallRepository {
	return &StallRepository{
		dao:     dao,
		ratings: ratings,
	}
}

func (r *StallRepository) Create(ctx context.Context, stall domain.Stall) (domain.Stall, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(stall))
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StallRepository) FindByID(ctx context.Context, id uint) (domain.Stall, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	stall := r.daoToDomain(found)
	if err = r.enrich(ctx, []domain.Stall{stall}); err != nil {
		return domain.Stall{}, err
	}
	if len(found.Images) > 0 {
		stall.ImageURL = found.Images[0].ImageURL
	}

	return stall, nil
}

// FindVisible returns the stalls a viewer may see, newest first, each
// enriched with its first image URL and rating rollup.
func (r *StallRepository) FindVisible(ctx context.Context, division string, viewerID uint) ([]domain.Stall, error) {
	found, err := r.dao.FindVisible(ctx, division, viewerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVisible -> %w", err)
	}

	stalls := make([]domain.Stall, 0, len(found))
	for _, s := range found {
		stalls = append(stalls, r.daoToDomain(s))
	}

	if err = r.enrich(ctx, stalls); err != nil {
		return nil, err
	}

	return stalls, nil
}

func (r *StallRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Stall, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	stalls := make([]domain.Stall, 0, len(found))
	for _, s := range found {
		stalls = append(stalls, r.daoToDomain(s))
	}

	if err = r.enrich(ctx, stalls); err != nil {
		return nil, err
	}

	return stalls, nil
}

func (r *StallRepository) UpdateStatus(ctx context.Context, id uint, status string) (domain.Stall, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Stall{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StallRepository) AttachImage(ctx context.Context, stallID uint, imageURL string) (domain.StallImage, error) {
	created, err := r.dao.InsertImage(ctx, dao.StallImage{
		StallID:  stallID,
		ImageURL: imageURL,
	})
	if err != nil {
		return domain.StallImage{}, fmt.Errorf("r.dao.InsertImage -> %w", err)
	}

	return domain.StallImage{
		ID:        created.ID,
		StallID:   created.StallID,
		ImageURL:  created.ImageURL,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *StallRepository) enrich(ctx context.Context, stalls []domain.Stall) error {
	if len(stalls) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(stalls))
	for _, s := range stalls {
		ids = append(ids, s.ID)
	}

	urls, err := r.dao.FirstImageURLs(ctx, ids)
	if err != nil {
		return fmt.Errorf("r.dao.FirstImageURLs -> %w", err)
	}

	aggregates, err := r.ratings.AggregateRatings(ctx, ids)
	if err != nil {
		return fmt.Errorf("r.ratings.AggregateRatings -> %w", err)
	}

	for i := range stalls {
		if url, ok := urls[stalls[i].ID]; ok && stalls[i].ImageURL == "" {
			stalls[i].ImageURL = url
		}
		if agg, ok := aggregates[stalls[i].ID]; ok {
			stalls[i].Rating = agg.AvgRating
			stalls[i].ReviewCount = agg.ReviewCount
		}
	}

	return nil
}

func (r *StallRepository) domainToDao(s domain.Stall) dao.Stall {
	return dao.Stall{
		ID:            s.ID,
		NameBn:        s.NameBn,
		NameEn:        s.NameEn,
		OwnerName:     s.OwnerName,
		Phone:         s.Phone,
		Division:      s.Division,
		District:      s.District,
		Upazila:       s.Upazila,
		Lat:           s.Lat,
		Lng:           s.Lng,
		OpenTime:      s.OpenTime,
		CloseTime:     s.CloseTime,
		DescriptionBn: s.DescriptionBn,
		DescriptionEn: s.DescriptionEn,
		TeaPriceMin:   s.TeaPriceMin,
		TeaPriceMax:   s.TeaPriceMax,
		Facilities:    s.Facilities,
		Status:        s.Status,
		UserID:        s.UserID,
	}
}

func (r *StallRepository) daoToDomain(s dao.Stall) domain.Stall {
	stall := domain.Stall{
		ID:            s.ID,
		NameBn:        s.NameBn,
		NameEn:        s.NameEn,
		OwnerName:     s.OwnerName,
		Phone:         s.Phone,
		Division:      s.Division,
		District:      s.District,
		Upazila:       s.Upazila,
		Lat:           s.Lat,
		Lng:           s.Lng,
		OpenTime:      s.OpenTime,
		CloseTime:     s.CloseTime,
		DescriptionBn: s.DescriptionBn,
		DescriptionEn: s.DescriptionEn,
		TeaPriceMin:   s.TeaPriceMin,
		TeaPriceMax:   s.TeaPriceMax,
		Facilities:    s.Facilities,
		Status:        s.Status,
		UserID:        s.UserID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	for _, img := range s.Images {
		stall.Images = append(stall.Images, domain.StallImage{
			ID:        img.ID,
			StallID:   img.StallID,
			ImageURL:  img.ImageURL,
			CreatedAt: img.CreatedAt,
		})
	}

	return stall
}
