package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/request"
	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/service"
)

type ReviewService interface {
	AddReview(ctx context.Context, review domain.Review) (domain.Review, error)
	GetReviews(ctx context.Context, stallID uint) ([]domain.Review, error)
	AddFavorite(ctx context.Context, stallID, userID uint) (domain.Favorite, error)
	RemoveFavorite(ctx context.Context, stallID, userID uint) error
	GetFavorites(ctx context.Context, userID uint) ([]domain.Favorite, error)
	ReportStall(ctx context.Context, report domain.Report) (domain.Report, error)
}

type ReviewHandler struct {
	svc  ReviewService
	uSvc UserService
}

func NewReviewHandler(svc ReviewService, uSvc UserService) *ReviewHandler {
	return &ReviewHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetReviews godoc
// @Summary      List reviews for a stall
// @Tags         reviews
// @Produce      json
// @Param        stallID  path      int  true  "stall ID"
// @Success      200  {array}   domain.Review
// @Failure      500  {object}  response.Err
// @Router       /stalls/{stallID}/reviews [get]
func (h *ReviewHandler) HandleGetReviews(ctx *gin.Context) {
	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reviews, err := h.svc.GetReviews(ctx.Request.Context(), stallID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetReviews -> h.svc.GetReviews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// HandleCreateReview godoc
// @Summary      Review a stall
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        stallID  path      int                          true  "stall ID"
// @Param        request  body      request.CreateReviewRequest  true  "request body"
// @Success      201  {object}  domain.Review
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /stalls/{stallID}/reviews [post]
// @Security BearerAuth
func (h *ReviewHandler) HandleCreateReview(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.AddReview(ctx.Request.Context(), domain.Review{
		StallID: stallID,
		UserID:  user.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stall", "ID", stallID))

			return
		}
		if errors.Is(err, service.ErrAlreadyReviewed) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyReviewed))

			return
		}
		if errors.Is(err, service.ErrInvalidRating) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateReview -> h.svc.AddReview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleAddFavorite godoc
// @Summary      Favorite a stall
// @Tags         favorites
// @Produce      json
// @Param        stallID  path      int  true  "stall ID"
// @Success      201  {object}  domain.Favorite
// @Failure      404  {object}  response.Err
// @Router       /stalls/{stallID}/favorite [post]
// @Security BearerAuth
func (h *ReviewHandler) HandleAddFavorite(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	favorite, err := h.svc.AddFavorite(ctx.Request.Context(), stallID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stall", "ID", stallID))

			return
		}

		err = fmt.Errorf("v1.HandleAddFavorite -> h.svc.AddFavorite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, favorite)
}

// HandleRemoveFavorite godoc
// @Summary      Unfavorite a stall
// @Tags         favorites
// @Produce      json
// @Param        stallID  path      int  true  "stall ID"
// @Success      204  "no content"
// @Failure      404  {object}  response.Err
// @Router       /stalls/{stallID}/favorite [delete]
// @Security BearerAuth
func (h *ReviewHandler) HandleRemoveFavorite(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.RemoveFavorite(ctx.Request.Context(), stallID, user.ID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("favorite", "stallID", stallID))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveFavorite -> h.svc.RemoveFavorite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetFavorites godoc
// @Summary      List the caller's favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {array}   domain.Favorite
// @Failure      401  {object}  response.Err
// @Router       /me/favorites [get]
// @Security BearerAuth
func (h *ReviewHandler) HandleGetFavorites(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	favorites, err := h.svc.GetFavorites(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFavorites -> h.svc.GetFavorites -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

// HandleReportStall godoc
// @Summary      Report a stall
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        stallID  path      int                          true  "stall ID"
// @Param        request  body      request.CreateReportRequest  true  "request body"
// @Success      201  {object}  domain.Report
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /stalls/{stallID}/report [post]
// @Security BearerAuth
func (h *ReviewHandler) HandleReportStall(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.ReportStall(ctx.Request.Context(), domain.Report{
		StallID: stallID,
		UserID:  user.ID,
		Reason:  req.Reason,
	})
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stall", "ID", stallID))

			return
		}

		err = fmt.Errorf("v1.HandleReportStall -> h.svc.ReportStall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}
