package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/pkg/jwthelper"
)

// ContextKeyUserID is where the authenticated user's ID lands in the
// gin context after VerifyJWT.
const ContextKeyUserID = "userID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized())
			ctx.Abort()

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized())
			ctx.Abort()

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Next()
	}
}

// OptionalJWT attaches the user ID when a valid bearer token is
// present but lets anonymous requests through untouched.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.Next()

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err == nil {
			ctx.Set(ContextKeyUserID, claims.UserID)
		}

		ctx.Next()
	}
}
