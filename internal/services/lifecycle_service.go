package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	outboxevents "github.com/bionicotaku/lingo-services-tube/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

const orphanRecordTimeout = 3 * time.Second

// CreateVideoInput 表示上传视频的输入。
type CreateVideoInput struct {
	Upload         mediastore.Upload
	Title          string
	Description    string
	OwnerID        uuid.UUID
	IdempotencyKey string
}

// EditVideoInput 表示编辑视频的输入，nil 字段保持不变。
type EditVideoInput struct {
	VideoID        uuid.UUID
	CallerID       uuid.UUID
	Title          *string
	Description    *string
	IdempotencyKey string
}

// DeleteVideoInput 表示删除视频的输入。
type DeleteVideoInput struct {
	VideoID        uuid.UUID
	CallerID       uuid.UUID
	IdempotencyKey string
}

// DeleteVideoResult 描述删除结果。MediaWarning 非空表示元数据已删除但媒体对象残留，已登记为孤儿。
type DeleteVideoResult struct {
	VideoID         uuid.UUID
	MetadataDeleted bool
	MediaDeleted    bool
	MediaWarning    error
}

// AddCommentInput 表示发表评论的输入。
type AddCommentInput struct {
	VideoID        uuid.UUID
	CallerID       uuid.UUID
	Text           string
	IdempotencyKey string
}

// VideoLifecycleService 协调媒体存储与元数据，负责视频的创建、编辑、删除、播放计数与评论。
type VideoLifecycleService struct {
	videos     VideoRepo
	comments   CommentRepo
	userVideos UserVideosRepo
	orphans    MediaOrphanRepo
	media      mediastore.Store
	events     *eventWriter
	txManager  txmanager.Manager
	log        *log.Helper
}

// NewVideoLifecycleService 构造生命周期服务。
func NewVideoLifecycleService(
	videos VideoRepo,
	comments CommentRepo,
	userVideos UserVideosRepo,
	orphans MediaOrphanRepo,
	outbox OutboxEnqueuer,
	media mediastore.Store,
	tx txmanager.Manager,
	logger log.Logger,
) *VideoLifecycleService {
	return &VideoLifecycleService{
		videos:     videos,
		comments:   comments,
		userVideos: userVideos,
		orphans:    orphans,
		media:      media,
		events:     newEventWriter(outbox, "lifecycle"),
		txManager:  tx,
		log:        log.NewHelper(logger),
	}
}

// CreateVideo 先写媒体，再在单个事务内写元数据、反向引用与创建事件。
// 媒体写入失败时不创建任何记录；事务失败时已写入的对象登记为孤儿。
func (s *VideoLifecycleService) CreateVideo(ctx context.Context, input CreateVideoInput) (*vo.Video, error) {
	title := strings.TrimSpace(input.Title)
	if input.OwnerID == uuid.Nil {
		return nil, invalidArgument("owner is required")
	}
	if title == "" {
		return nil, invalidArgument("title is required")
	}
	if input.Upload.Body == nil {
		return nil, invalidArgument("video file is required")
	}

	upload := input.Upload
	if upload.Category == "" {
		upload.Category = mediastore.CategoryVideos
	}
	locator, err := s.media.Put(ctx, upload)
	if err != nil {
		s.log.WithContext(ctx).Errorf("store media failed: owner=%s filename=%s err=%v", input.OwnerID, upload.Filename, err)
		return nil, ErrStorageWrite.WithCause(err)
	}

	meta := operationMetadata{Operation: opCreateVideo, IdempotencyKey: input.IdempotencyKey}
	var created *po.Video
	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		video, repoErr := s.videos.Create(txCtx, sess, repositories.CreateVideoInput{
			CreatorID:   input.OwnerID,
			Title:       title,
			Description: strings.TrimSpace(input.Description),
			FileURL:     locator,
		})
		if repoErr != nil {
			return repoErr
		}
		if err := s.userVideos.Add(txCtx, sess, input.OwnerID, video.VideoID); err != nil {
			return err
		}
		event, buildErr := outboxevents.NewVideoCreatedEvent(video, uuid.New(), video.CreatedAt)
		if buildErr != nil {
			return fmt.Errorf("build video created event: %w", buildErr)
		}
		if err := s.events.enqueue(txCtx, sess, event, meta); err != nil {
			return err
		}
		created = video
		return nil
	})
	if err != nil {
		s.recordOrphan(ctx, locator, nil, po.OrphanReasonCreateFailed, err)
		return nil, s.translateError(ctx, "create video", uuid.Nil, err)
	}

	s.log.WithContext(ctx).Infof("CreateVideo: video_id=%s owner=%s", created.VideoID, created.CreatorID)
	return vo.NewVideoFromPO(created), nil
}

// EditVideo 仅允许所有者修改 title/description。
func (s *VideoLifecycleService) EditVideo(ctx context.Context, input EditVideoInput) (*vo.Video, error) {
	if input.VideoID == uuid.Nil {
		return nil, invalidArgument("video_id is required")
	}
	if input.Title == nil && input.Description == nil {
		return nil, invalidArgument("no fields to update")
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return nil, invalidArgument("title cannot be empty")
		}
		input.Title = &trimmed
	}

	meta := operationMetadata{Operation: opEditVideo, IdempotencyKey: input.IdempotencyKey}
	var updated *po.Video
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		current, repoErr := s.videos.Get(txCtx, sess, input.VideoID)
		if repoErr != nil {
			return repoErr
		}
		if !current.IsOwnedBy(input.CallerID) {
			return ErrVideoForbidden
		}

		video, repoErr := s.videos.UpdateFields(txCtx, sess, repositories.UpdateVideoFieldsInput{
			VideoID:     input.VideoID,
			Title:       input.Title,
			Description: input.Description,
		})
		if repoErr != nil {
			return repoErr
		}
		event, buildErr := outboxevents.NewVideoUpdatedEvent(video, outboxevents.VideoUpdateChanges{
			Title:       input.Title,
			Description: input.Description,
		}, uuid.New(), video.UpdatedAt)
		if buildErr != nil {
			return fmt.Errorf("build video updated event: %w", buildErr)
		}
		if err := s.events.enqueue(txCtx, sess, event, meta); err != nil {
			return err
		}
		updated = video
		return nil
	})
	if err != nil {
		return nil, s.translateError(ctx, "edit video", input.VideoID, err)
	}

	s.log.WithContext(ctx).Infof("EditVideo: video_id=%s", updated.VideoID)
	return vo.NewVideoFromPO(updated), nil
}

// DeleteVideo 删除媒体对象与元数据。无论媒体删除是否成功，元数据都会被删除；
// 媒体删除失败时通过 MediaWarning 返回，并在同一事务内登记孤儿。
func (s *VideoLifecycleService) DeleteVideo(ctx context.Context, input DeleteVideoInput) (*DeleteVideoResult, error) {
	if input.VideoID == uuid.Nil {
		return nil, invalidArgument("video_id is required")
	}

	video, err := s.videos.Get(ctx, nil, input.VideoID)
	if err != nil {
		return nil, s.translateError(ctx, "delete video", input.VideoID, err)
	}
	if !video.IsOwnedBy(input.CallerID) {
		return nil, ErrVideoForbidden
	}

	var mediaErr error
	if video.FileURL != "" {
		mediaErr = s.media.Delete(ctx, video.FileURL)
		if mediaErr != nil {
			s.log.WithContext(ctx).Warnf("delete media failed, metadata will still be removed: video_id=%s locator=%s err=%v", video.VideoID, video.FileURL, mediaErr)
		}
	}

	meta := operationMetadata{Operation: opDeleteVideo, IdempotencyKey: input.IdempotencyKey}
	err = s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		deleted, repoErr := s.videos.Delete(txCtx, sess, video.VideoID)
		if repoErr != nil {
			return repoErr
		}
		// 并发删除时只有移除了行的一方写入 video.deleted
		if !deleted {
			return repositories.ErrVideoNotFound
		}
		if err := s.userVideos.Remove(txCtx, sess, video.CreatorID, video.VideoID); err != nil {
			return err
		}
		if mediaErr != nil {
			lastErr := mediaErr.Error()
			if _, err := s.orphans.Record(txCtx, sess, repositories.RecordMediaOrphanInput{
				Locator:   video.FileURL,
				VideoID:   &video.VideoID,
				Reason:    po.OrphanReasonDeleteFailed,
				LastError: &lastErr,
			}); err != nil {
				return err
			}
		}
		event, buildErr := outboxevents.NewVideoDeletedEvent(video, mediaErr == nil, uuid.New(), time.Now().UTC())
		if buildErr != nil {
			return fmt.Errorf("build video deleted event: %w", buildErr)
		}
		if err := s.events.enqueue(txCtx, sess, event, meta); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if mediaErr == nil && video.FileURL != "" && !errors.Is(err, repositories.ErrVideoNotFound) {
			s.log.WithContext(ctx).Errorf("metadata delete failed after media was removed: video_id=%s locator=%s", video.VideoID, video.FileURL)
		}
		return nil, s.translateError(ctx, "delete video", input.VideoID, err)
	}

	s.log.WithContext(ctx).Infof("DeleteVideo: video_id=%s media_deleted=%t", video.VideoID, mediaErr == nil)
	return &DeleteVideoResult{
		VideoID:         video.VideoID,
		MetadataDeleted: true,
		MediaDeleted:    mediaErr == nil,
		MediaWarning:    mediaErr,
	}, nil
}

// RegisterView 原子自增播放数，公开接口不做鉴权。
func (s *VideoLifecycleService) RegisterView(ctx context.Context, videoID uuid.UUID) (int64, error) {
	if videoID == uuid.Nil {
		return 0, invalidArgument("video_id is required")
	}
	views, err := s.videos.IncrementViews(ctx, nil, videoID)
	if err != nil {
		return 0, s.translateError(ctx, "register view", videoID, err)
	}
	return views, nil
}

// AddComment 在单个事务内创建评论、追加到视频并写入事件。
func (s *VideoLifecycleService) AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if input.VideoID == uuid.Nil {
		return nil, invalidArgument("video_id is required")
	}
	if input.CallerID == uuid.Nil {
		return nil, invalidArgument("caller is required")
	}
	if text == "" {
		return nil, invalidArgument("comment text is required")
	}

	meta := operationMetadata{Operation: opAddComment, IdempotencyKey: input.IdempotencyKey}
	var created *po.Comment
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if _, err := s.videos.Get(txCtx, sess, input.VideoID); err != nil {
			return err
		}
		comment, repoErr := s.comments.Create(txCtx, sess, input.CallerID, text)
		if repoErr != nil {
			return repoErr
		}
		if _, err := s.videos.AppendComment(txCtx, sess, input.VideoID, comment.CommentID); err != nil {
			return err
		}
		event, buildErr := outboxevents.NewVideoCommentedEvent(input.VideoID, comment, uuid.New(), comment.CreatedAt)
		if buildErr != nil {
			return fmt.Errorf("build video commented event: %w", buildErr)
		}
		if err := s.events.enqueue(txCtx, sess, event, meta); err != nil {
			return err
		}
		created = comment
		return nil
	})
	if err != nil {
		return nil, s.translateError(ctx, "add comment", input.VideoID, err)
	}

	s.log.WithContext(ctx).Infof("AddComment: video_id=%s comment_id=%s", input.VideoID, created.CommentID)
	return vo.NewCommentFromPO(created), nil
}

// recordOrphan 尽力登记孤儿对象，使用独立的短超时，避免请求已超时导致登记也失败。
func (s *VideoLifecycleService) recordOrphan(ctx context.Context, locator string, videoID *uuid.UUID, reason po.OrphanReason, cause error) {
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orphanRecordTimeout)
	defer cancel()

	lastErr := cause.Error()
	if _, err := s.orphans.Record(recordCtx, nil, repositories.RecordMediaOrphanInput{
		Locator:   locator,
		VideoID:   videoID,
		Reason:    reason,
		LastError: &lastErr,
	}); err != nil {
		s.log.WithContext(ctx).Errorf("record media orphan failed, object leaked: locator=%s reason=%s err=%v", locator, reason, err)
	}
}

func (s *VideoLifecycleService) translateError(ctx context.Context, op string, videoID uuid.UUID, err error) error {
	if errors.Is(err, repositories.ErrVideoNotFound) {
		return ErrVideoNotFound
	}
	var kerr *errors.Error
	if errors.As(err, &kerr) {
		return kerr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		s.log.WithContext(ctx).Warnf("%s timeout: video_id=%s", op, videoID)
		return errors.GatewayTimeout(ReasonQueryTimeout, op+" timeout")
	}
	s.log.WithContext(ctx).Errorf("%s failed: video_id=%s err=%v", op, videoID, err)
	return errors.InternalServer(ReasonQueryVideoFailed, "failed to "+op).WithCause(fmt.Errorf("%s: %w", op, err))
}
