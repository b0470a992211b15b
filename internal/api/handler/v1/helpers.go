package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/api/middleware"
	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, id uint, displayName, avatarURL string) (domain.User, error)
}

// getUserFromContext resolves the authenticated user placed in the gin
// context by the JWT middleware.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	userID := ctx.GetUint(middleware.ContextKeyUserID)
	if userID == 0 {
		return domain.User{}, response.ErrUnauthorized()
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized()
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

// viewerIDFromContext returns the authenticated user's ID, or zero for
// anonymous requests on optionally-authenticated routes.
func viewerIDFromContext(ctx *gin.Context) uint {
	return ctx.GetUint(middleware.ContextKeyUserID)
}
