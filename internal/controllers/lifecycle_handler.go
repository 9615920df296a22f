package controllers

import (
	"context"
	stderrors "errors"
	"mime/multipart"
	"net/http"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	"github.com/bionicotaku/lingo-services-tube/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	formFieldVideo       = "videoFile"
	formFieldTitle       = "title"
	formFieldDescription = "description"

	defaultMaxUploadBytes = 512 << 20
	multipartMemoryBytes  = 32 << 20
)

// UploadLimits 限制上传请求体大小。
type UploadLimits struct {
	MaxBytes int64
}

// LifecycleHandler 负责上传、编辑、删除、播放计数与评论。
type LifecycleHandler struct {
	*BaseHandler
	svc    services.VideoLifecycleServiceInterface
	limits UploadLimits
}

// NewLifecycleHandler 构造生命周期 Handler。
func NewLifecycleHandler(svc services.VideoLifecycleServiceInterface, base *BaseHandler, limits UploadLimits) *LifecycleHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = defaultMaxUploadBytes
	}
	return &LifecycleHandler{BaseHandler: base, svc: svc, limits: limits}
}

// RegisterRoutes 挂载写路由。
func (h *LifecycleHandler) RegisterRoutes(r *khttp.Router) {
	r.POST("/v1/videos", h.CreateVideo)
	r.PATCH("/v1/videos/{id}", h.EditVideo)
	r.DELETE("/v1/videos/{id}", h.DeleteVideo)
	r.POST("/v1/videos/{id}/views", h.RegisterView)
	r.POST("/v1/videos/{id}/comments", h.AddComment)
}

// CreateVideo 处理 multipart 上传：videoFile、title、description。
func (h *LifecycleHandler) CreateVideo(ctx khttp.Context) error {
	meta := h.ExtractMetadata(ctx)
	ownerID, err := h.RequireCaller(meta)
	if err != nil {
		return err
	}

	req := ctx.Request()
	req.Body = http.MaxBytesReader(ctx.Response(), req.Body, h.limits.MaxBytes)
	if err := req.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.New(http.StatusRequestEntityTooLarge, services.ReasonVideoInvalidArgument, "upload exceeds size limit")
		}
		return errors.BadRequest(services.ReasonVideoInvalidArgument, "invalid multipart form")
	}
	defer func() {
		if req.MultipartForm != nil {
			_ = req.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := req.FormFile(formFieldVideo)
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, "videoFile is required")
	}
	defer file.Close()

	input := services.CreateVideoInput{
		Upload:         newUpload(file, header),
		Title:          req.FormValue(formFieldTitle),
		Description:    req.FormValue(formFieldDescription),
		OwnerID:        ownerID,
		IdempotencyKey: meta.IdempotencyKey,
	}
	return invoke(ctx, OperationCreateVideo, http.StatusCreated, input, func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()
		timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

		video, err := h.svc.CreateVideo(timeoutCtx, in.(services.CreateVideoInput))
		if err != nil {
			return nil, err
		}
		return dto.NewVideo(video), nil
	})
}

// EditVideo 处理 JSON PATCH，仅所有者可修改。
func (h *LifecycleHandler) EditVideo(ctx khttp.Context) error {
	meta := h.ExtractMetadata(ctx)
	callerID, err := h.RequireCaller(meta)
	if err != nil {
		return err
	}
	videoID, err := dto.ParseVideoID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}
	var body dto.EditVideoRequest
	if err := ctx.Bind(&body); err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, "invalid request body")
	}

	input := services.EditVideoInput{
		VideoID:        videoID,
		CallerID:       callerID,
		Title:          body.Title,
		Description:    body.Description,
		IdempotencyKey: meta.IdempotencyKey,
	}
	return invoke(ctx, OperationEditVideo, http.StatusOK, input, func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()
		timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

		video, err := h.svc.EditVideo(timeoutCtx, in.(services.EditVideoInput))
		if err != nil {
			return nil, err
		}
		return dto.NewVideo(video), nil
	})
}

// DeleteVideo 删除视频。媒体删除失败时仍返回 200，并在 warning 中说明。
func (h *LifecycleHandler) DeleteVideo(ctx khttp.Context) error {
	meta := h.ExtractMetadata(ctx)
	callerID, err := h.RequireCaller(meta)
	if err != nil {
		return err
	}
	videoID, err := dto.ParseVideoID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}

	input := services.DeleteVideoInput{VideoID: videoID, CallerID: callerID, IdempotencyKey: meta.IdempotencyKey}
	return invoke(ctx, OperationDeleteVideo, http.StatusOK, input, func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()
		timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

		result, err := h.svc.DeleteVideo(timeoutCtx, in.(services.DeleteVideoInput))
		if err != nil {
			return nil, err
		}
		resp := dto.DeleteVideoResult{
			VideoID:         result.VideoID.String(),
			MetadataDeleted: result.MetadataDeleted,
			MediaDeleted:    result.MediaDeleted,
		}
		if result.MediaWarning != nil {
			resp.Warning = "media object could not be removed and is queued for cleanup"
		}
		return resp, nil
	})
}

// RegisterView 公开接口，无需身份。
func (h *LifecycleHandler) RegisterView(ctx khttp.Context) error {
	videoID, err := dto.ParseVideoID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}
	return invoke(ctx, OperationRegisterView, http.StatusOK, videoID, func(c context.Context, _ any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()

		views, err := h.svc.RegisterView(timeoutCtx, videoID)
		if err != nil {
			return nil, err
		}
		return dto.ViewCount{VideoID: videoID.String(), Views: views}, nil
	})
}

// AddComment 以调用方身份发表评论。
func (h *LifecycleHandler) AddComment(ctx khttp.Context) error {
	meta := h.ExtractMetadata(ctx)
	callerID, err := h.RequireCaller(meta)
	if err != nil {
		return err
	}
	videoID, err := dto.ParseVideoID(ctx.Vars().Get("id"))
	if err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, err.Error())
	}
	var body dto.AddCommentRequest
	if err := ctx.Bind(&body); err != nil {
		return errors.BadRequest(services.ReasonVideoInvalidArgument, "invalid request body")
	}

	input := services.AddCommentInput{VideoID: videoID, CallerID: callerID, Text: body.Text, IdempotencyKey: meta.IdempotencyKey}
	return invoke(ctx, OperationAddComment, http.StatusCreated, input, func(c context.Context, in any) (any, error) {
		timeoutCtx, cancel := h.WithTimeout(c, HandlerTypeCommand)
		defer cancel()
		timeoutCtx = InjectHandlerMetadata(timeoutCtx, meta)

		comment, err := h.svc.AddComment(timeoutCtx, in.(services.AddCommentInput))
		if err != nil {
			return nil, err
		}
		return dto.NewComment(comment), nil
	})
}

func newUpload(file multipart.File, header *multipart.FileHeader) mediastore.Upload {
	return mediastore.Upload{
		Body:        file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Category:    mediastore.CategoryVideos,
	}
}
