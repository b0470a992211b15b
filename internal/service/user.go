package service

import (
	"context"
	"fmt"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, id uint, displayName, avatarURL string) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, displayName, avatarURL string) (domain.User, error) {
	user, err := s.repo.UpdateProfile(ctx, id, displayName, avatarURL)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return user, nil
}
