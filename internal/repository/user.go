package repository

import (
	"context"
	"fmt"

	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	UpdateProfile(ctx context.Context, id uint, displayName, avatarURL string) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	created, err := r.dao.Insert(ctx, dao.User{
		Email:       user.Email,
		Password:    user.Password,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Role:        role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, displayName, avatarURL string) (domain.User, error) {
	updated, err := r.dao.UpdateProfile(ctx, id, displayName, avatarURL)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
