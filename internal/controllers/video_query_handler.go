package controllers

import (
	"context"
	"net/http"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-tube/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

// VideoQueryHandler 负责首页、搜索、详情与用户视频列表。
type VideoQueryHandler struct {
	*BaseHandler
	svc services.VideoQueryServiceInterface
}

// NewVideoQueryHandler 构造查询 Handler。
func NewVideoQueryHandler(svc services.VideoQueryServiceInterface, base *BaseHandler) *VideoQueryHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &VideoQueryHandler{BaseHandler: base, svc: svc}
}

// RegisterRoutes 挂载只读路由。
func (h *VideoQueryHandler) RegisterRoutes(r *khttp.Router) {
	r.GET("/v1/videos", h.ListHome)
	r.GET("/v1/search", h.Search)
	r.GET("/v1/videos/{id}", h.GetVideo)
	r.GET("/v1/users/{id}/videos", h.ListByOwner)
}

// ListHome 返回首页视频，最新的在前。
func (h *VideoQueryHandler) ListHome(ctx khttp.Context) error {
	return invoke(ctx, OperationListHome, http.StatusOK, nil, func(c context.Context, _ any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()
		return dto.NewVideoList(h.svc.ListHome(timeoutCtx)), nil
	})
}

// Search 处理 /v1/search?term=。
func (h *VideoQueryHandler) Search(ctx khttp.Context) error {
	term := ctx.Query().Get("term")
	return invoke(ctx, OperationSearch, http.StatusOK, term, func(c context.Context, req any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()
		return dto.NewVideoList(h.svc.SearchVideos(timeoutCtx, req.(string))), nil
	})
}

// GetVideo 返回视频详情与评论。
func (h *VideoQueryHandler) GetVideo(ctx khttp.Context) error {
	videoID, err := dto.ParseVideoID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}
	return invoke(ctx, OperationGetVideo, http.StatusOK, videoID, func(c context.Context, req any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()
		detail, err := h.svc.GetVideo(timeoutCtx, req.(uuid.UUID))
		if err != nil {
			return nil, err
		}
		return dto.NewVideoDetail(detail), nil
	})
}

// ListByOwner 返回某个用户上传的视频。
func (h *VideoQueryHandler) ListByOwner(ctx khttp.Context) error {
	ownerID, err := dto.ParseUserID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}
	return invoke(ctx, OperationListByOwner, http.StatusOK, ownerID, func(c context.Context, req any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeQuery)
		defer cancel()
		items, err := h.svc.ListByOwner(timeoutCtx, req.(uuid.UUID))
		if err != nil {
			return nil, err
		}
		return dto.NewVideoList(items), nil
	})
}
