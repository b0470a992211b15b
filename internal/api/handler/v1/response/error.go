package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope. StatusCode never serializes; the
// transport status carries it.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "authentication required",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

// ErrSubmissionFailed surfaces a failed stall insert with the store's
// message, as a correctable (non-5xx) outcome.
func ErrSubmissionFailed(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnprocessableEntity,
		Msg:        err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        err.Error(),
	}
}

// RenderErr writes the error envelope; server-side failures are logged
// in full but rendered with a generic message.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.String("error", err.Msg),
		)

		ctx.JSON(err.StatusCode, &Err{
			StatusCode: err.StatusCode,
			Msg:        "internal server error",
		})

		return
	}

	ctx.JSON(err.StatusCode, err)
}
