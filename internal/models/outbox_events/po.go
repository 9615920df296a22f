package outboxevents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind 标识领域事件类型。
type Kind int

// 领域事件类型常量。
const (
	// KindUnknown 表示未识别的事件类型。
	KindUnknown Kind = iota
	// KindVideoCreated 表示视频创建事件。
	KindVideoCreated
	// KindVideoUpdated 表示视频标题/描述更新事件。
	KindVideoUpdated
	// KindVideoDeleted 表示视频删除事件。
	KindVideoDeleted
	// KindVideoCommented 表示视频新增评论事件。
	KindVideoCommented
)

func (k Kind) String() string {
	switch k {
	case KindVideoCreated:
		return "tube.video.created"
	case KindVideoUpdated:
		return "tube.video.updated"
	case KindVideoDeleted:
		return "tube.video.deleted"
	case KindVideoCommented:
		return "tube.video.commented"
	default:
		return "tube.event.unknown"
	}
}

// DomainEvent 表示领域层生成的标准事件。
type DomainEvent struct {
	EventID       uuid.UUID
	Kind          Kind
	AggregateID   uuid.UUID
	AggregateType string
	Version       int64
	OccurredAt    time.Time
	Payload       any
}

// VideoCreated 描述视频创建事件载荷。
type VideoCreated struct {
	VideoID     uuid.UUID `json:"video_id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
}

// VideoUpdated 描述视频更新事件载荷，仅包含发生变化的字段。
type VideoUpdated struct {
	VideoID     uuid.UUID `json:"video_id"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// VideoDeleted 描述视频删除事件载荷。
type VideoDeleted struct {
	VideoID      uuid.UUID `json:"video_id"`
	CreatorID    uuid.UUID `json:"creator_id"`
	FileURL      string    `json:"file_url"`
	MediaDeleted bool      `json:"media_deleted"`
}

// VideoCommented 描述新增评论事件载荷。
type VideoCommented struct {
	VideoID   uuid.UUID `json:"video_id"`
	CommentID uuid.UUID `json:"comment_id"`
	CreatorID uuid.UUID `json:"creator_id"`
}

const (
	// AggregateTypeVideo 标识视频聚合类型。
	AggregateTypeVideo = "tube.video"
	// SchemaVersionV1 描述事件载荷的当前 schema 版本。
	SchemaVersionV1 = "v1"
)

var (
	// ErrInvalidEventID 表示未提供合法的事件 ID。
	ErrInvalidEventID = fmt.Errorf("event builder: event id is required")
	// ErrUnknownEventKind 表示未识别的事件类型。
	ErrUnknownEventKind = fmt.Errorf("event builder: unknown event kind")
	// ErrNilVideo 表示构建事件时缺少视频实体。
	ErrNilVideo = fmt.Errorf("event builder: video is nil")
	// ErrNilComment 表示构建评论事件时缺少评论实体。
	ErrNilComment = fmt.Errorf("event builder: comment is nil")
	// ErrEmptyUpdatePayload 表示更新事件没有任何变更字段。
	ErrEmptyUpdatePayload = fmt.Errorf("event builder: empty update payload")
)
