package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tongmap/tong-api/internal/api/handler/v1/request"
	"github.com/tongmap/tong-api/internal/api/handler/v1/response"
	"github.com/tongmap/tong-api/internal/domain"
	"github.com/tongmap/tong-api/internal/service"
)

type StallService interface {
	ListStalls(ctx context.Context, division string, viewerID uint) ([]domain.Stall, bool, error)
	GetStall(ctx context.Context, id uint) (domain.Stall, error)
	ListStallsByUser(ctx context.Context, userID uint) ([]domain.Stall, error)
	SubmitStall(ctx context.Context, draft service.StallDraft, userID uint, photo *service.Photo) (domain.Stall, error)
	ModerateStall(ctx context.Context, id uint, status string) (domain.Stall, error)
}

type StallHandler struct {
	svc  StallService
	uSvc UserService
}

func NewStallHandler(svc StallService, uSvc UserService) *StallHandler {
	return &StallHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListStalls godoc
// @Summary      List tea stalls
// @Description  Returns visible stalls, newest first, optionally narrowed by division and a free-text query. Falls back to the built-in sample dataset when no rows match.
// @Tags         stalls
// @Produce      json
// @Param        division  query     string  false  "division name or 'all'"
// @Param        q         query     string  false  "free-text search"
// @Param        lang      query     string  false  "locale for name matching (bn or en)"
// @Success      200  {object}  response.StallListResponse
// @Failure      500  {object}  response.Err
// @Router       /stalls [get]
func (h *StallHandler) HandleListStalls(ctx *gin.Context) {
	division := ctx.DefaultQuery("division", domain.DivisionAll)
	query := ctx.Query("q")
	lang := ctx.DefaultQuery("lang", "bn")

	stalls, sampled, err := h.svc.ListStalls(ctx.Request.Context(), division, viewerIDFromContext(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListStalls -> h.svc.ListStalls -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	stalls = service.SearchStalls(stalls, query, lang)

	ctx.JSON(http.StatusOK, response.StallListResponse{
		Stalls: stalls,
		Total:  len(stalls),
		Sample: sampled,
	})
}

// HandleGetStall godoc
// @Summary      Get one tea stall
// @Tags         stalls
// @Produce      json
// @Param        stallID  path      int  true  "stall ID"
// @Success      200  {object}  domain.Stall
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stalls/{stallID} [get]
func (h *StallHandler) HandleGetStall(ctx *gin.Context) {
	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stall, err := h.svc.GetStall(ctx.Request.Context(), stallID)
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stall", "ID", stallID))

			return
		}

		err = fmt.Errorf("v1.HandleGetStall -> h.svc.GetStall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stall)
}

// HandleCreateStall godoc
// @Summary      Submit a new tea stall
// @Description  Accepts the stall submission form (multipart) with an optional photo. The stall is created pending moderation.
// @Tags         stalls
// @Accept       mpfd
// @Produce      json
// @Param        name_bn   formData  string  true   "stall name (Bengali)"
// @Param        division  formData  string  true   "division"
// @Param        district  formData  string  true   "district"
// @Param        photo     formData  file    false  "photo attachment"
// @Success      201  {object}  domain.Stall
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Router       /stalls [post]
// @Security BearerAuth
func (h *StallHandler) HandleCreateStall(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateStallRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var photo *service.Photo
	if file, err := ctx.FormFile("photo"); err == nil && file != nil {
		opened, err := file.Open()
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		defer opened.Close()

		photo = &service.Photo{
			Filename: file.Filename,
			Content:  opened,
		}
	}

	draft := service.StallDraft{
		NameBn:        req.NameBn,
		NameEn:        req.NameEn,
		OwnerName:     req.OwnerName,
		Phone:         req.Phone,
		Division:      req.Division,
		District:      req.District,
		Upazila:       req.Upazila,
		Lat:           req.Lat,
		Lng:           req.Lng,
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		DescriptionBn: req.DescriptionBn,
		DescriptionEn: req.DescriptionEn,
		TeaPriceMin:   req.TeaPriceMin,
		TeaPriceMax:   req.TeaPriceMax,
		Facilities:    req.Facilities,
	}

	created, err := h.svc.SubmitStall(ctx.Request.Context(), draft, user.ID, photo)
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		response.RenderErr(ctx, response.ErrSubmissionFailed(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListOwnStalls godoc
// @Summary      List the caller's submissions
// @Tags         stalls
// @Produce      json
// @Success      200  {array}   domain.Stall
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me/stalls [get]
// @Security BearerAuth
func (h *StallHandler) HandleListOwnStalls(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	stalls, err := h.svc.ListStallsByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListOwnStalls -> h.svc.ListStallsByUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stalls)
}

// HandleModerateStall godoc
// @Summary      Update a stall's moderation status
// @Description  Admins move a submission between pending, approved and rejected.
// @Tags         stalls
// @Accept       json
// @Produce      json
// @Param        stallID  path      int                           true  "stall ID"
// @Param        request  body      request.ModerateStallRequest  true  "request body"
// @Success      200  {object}  domain.Stall
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /stalls/{stallID}/status [patch]
// @Security BearerAuth
func (h *StallHandler) HandleModerateStall(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	stallID, err := parseIDParam(ctx, "stallID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ModerateStallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.ModerateStall(ctx.Request.Context(), stallID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrStallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stall", "ID", stallID))

			return
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleModerateStall -> h.svc.ModerateStall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v (%v)", name, raw)
	}

	return uint(id), nil
}
