package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tongmap/tong-api/internal/domain"
)

type fakeAuthRepo struct {
	usersByEmail map[string]domain.User
	nextID       uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		usersByEmail: make(map[string]domain.User),
		nextID:       1,
	}
}

func (r *fakeAuthRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.usersByEmail[user.Email]; ok {
		return domain.User{}, ErrUserEmailExists
	}

	user.ID = r.nextID
	r.nextID++
	r.usersByEmail[user.Email] = user

	return user, nil
}

func (r *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())

	created, err := svc.Signup(context.Background(), domain.User{
		Email:       "chacha@example.com",
		Password:    "password1",
		DisplayName: "Rahim Uddin",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NotEqual(t, "password1", created.Password, "password is stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Email: "chacha@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{Email: "chacha@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{Email: "chacha@example.com", Password: "password1"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "chacha@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "chacha@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
