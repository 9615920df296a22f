package services

import (
	"context"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/uuid"
)

// VideoRepo 定义视频写模型与读模型所需的持久化能力。
type VideoRepo interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateVideoInput) (*po.Video, error)
	Get(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error)
	ListRecent(ctx context.Context, sess txmanager.Session) ([]*po.Video, error)
	SearchByTitle(ctx context.Context, sess txmanager.Session, term string) ([]*po.Video, error)
	ListByCreator(ctx context.Context, sess txmanager.Session, userID uuid.UUID) ([]*po.Video, error)
	UpdateFields(ctx context.Context, sess txmanager.Session, input repositories.UpdateVideoFieldsInput) (*po.Video, error)
	IncrementViews(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error)
	AppendComment(ctx context.Context, sess txmanager.Session, videoID, commentID uuid.UUID) (int32, error)
	Delete(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error)
}

// CommentRepo 定义评论持久化能力。
type CommentRepo interface {
	Create(ctx context.Context, sess txmanager.Session, creatorID uuid.UUID, text string) (*po.Comment, error)
	ListByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]*po.Comment, error)
}

// UserVideosRepo 维护所有者反向引用。
type UserVideosRepo interface {
	Add(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error
	Remove(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error
}

// MediaOrphanRepo 定义孤儿媒体登记与回收能力。
type MediaOrphanRepo interface {
	Record(ctx context.Context, sess txmanager.Session, input repositories.RecordMediaOrphanInput) (*po.MediaOrphan, error)
	Claim(ctx context.Context, now, leaseUntil time.Time, maxAttempts, limit int) ([]*po.MediaOrphan, error)
	LocatorInUse(ctx context.Context, locator string) (bool, error)
	Resolve(ctx context.Context, orphanID uuid.UUID, resolvedAt time.Time) error
	Reschedule(ctx context.Context, orphanID uuid.UUID, nextAvailable time.Time, lastErr string) error
	CountPending(ctx context.Context) (int64, error)
}

// OutboxEnqueuer 定义写 Outbox 的接口。
type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.OutboxMessage) error
}

// VideoLifecycleServiceInterface 抽象写用例，便于控制器测试替换。
type VideoLifecycleServiceInterface interface {
	CreateVideo(ctx context.Context, input CreateVideoInput) (*vo.Video, error)
	EditVideo(ctx context.Context, input EditVideoInput) (*vo.Video, error)
	DeleteVideo(ctx context.Context, input DeleteVideoInput) (*DeleteVideoResult, error)
	RegisterView(ctx context.Context, videoID uuid.UUID) (int64, error)
	AddComment(ctx context.Context, input AddCommentInput) (*vo.Comment, error)
}

// VideoQueryServiceInterface 抽象读用例。
type VideoQueryServiceInterface interface {
	GetVideo(ctx context.Context, videoID uuid.UUID) (*vo.VideoDetail, error)
	SearchVideos(ctx context.Context, term string) []*vo.Video
	ListHome(ctx context.Context) []*vo.Video
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*vo.Video, error)
}

var (
	_ VideoRepo                      = (*repositories.VideoRepository)(nil)
	_ CommentRepo                    = (*repositories.CommentRepository)(nil)
	_ UserVideosRepo                 = (*repositories.UserVideosRepository)(nil)
	_ MediaOrphanRepo                = (*repositories.MediaOrphanRepository)(nil)
	_ OutboxEnqueuer                 = (*repositories.OutboxRepository)(nil)
	_ VideoLifecycleServiceInterface = (*VideoLifecycleService)(nil)
	_ VideoQueryServiceInterface     = (*VideoQueryService)(nil)
)
