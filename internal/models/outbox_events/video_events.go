package outboxevents

import (
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/google/uuid"
)

// NewVideoCreatedEvent 基于持久化实体构建创建事件。
func NewVideoCreatedEvent(video *po.Video, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if video == nil {
		return nil, ErrNilVideo
	}
	payload := &VideoCreated{
		VideoID:     video.VideoID,
		CreatorID:   video.CreatorID,
		Title:       video.Title,
		Description: video.Description,
		FileURL:     video.FileURL,
	}
	return newVideoEvent(KindVideoCreated, video.VideoID, eventID, fallbackTime(occurredAt, video.CreatedAt), payload)
}

// VideoUpdateChanges 描述一次更新涉及的字段。
type VideoUpdateChanges struct {
	Title       *string
	Description *string
}

// NewVideoUpdatedEvent 构建更新事件；没有任何字段变化时返回 ErrEmptyUpdatePayload。
func NewVideoUpdatedEvent(video *po.Video, changes VideoUpdateChanges, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if video == nil {
		return nil, ErrNilVideo
	}
	if changes.Title == nil && changes.Description == nil {
		return nil, ErrEmptyUpdatePayload
	}
	payload := &VideoUpdated{
		VideoID:     video.VideoID,
		Title:       changes.Title,
		Description: changes.Description,
	}
	return newVideoEvent(KindVideoUpdated, video.VideoID, eventID, fallbackTime(occurredAt, video.UpdatedAt), payload)
}

// NewVideoDeletedEvent 构建删除事件，mediaDeleted 标记媒体对象是否已同步删除。
func NewVideoDeletedEvent(video *po.Video, mediaDeleted bool, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if video == nil {
		return nil, ErrNilVideo
	}
	payload := &VideoDeleted{
		VideoID:      video.VideoID,
		CreatorID:    video.CreatorID,
		FileURL:      video.FileURL,
		MediaDeleted: mediaDeleted,
	}
	return newVideoEvent(KindVideoDeleted, video.VideoID, eventID, occurredAt, payload)
}

// NewVideoCommentedEvent 构建评论事件。
func NewVideoCommentedEvent(videoID uuid.UUID, comment *po.Comment, eventID uuid.UUID, occurredAt time.Time) (*DomainEvent, error) {
	if comment == nil {
		return nil, ErrNilComment
	}
	payload := &VideoCommented{
		VideoID:   videoID,
		CommentID: comment.CommentID,
		CreatorID: comment.CreatorID,
	}
	return newVideoEvent(KindVideoCommented, videoID, eventID, fallbackTime(occurredAt, comment.CreatedAt), payload)
}

func newVideoEvent(kind Kind, videoID, eventID uuid.UUID, occurredAt time.Time, payload any) (*DomainEvent, error) {
	if eventID == uuid.Nil {
		return nil, ErrInvalidEventID
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	occurredAt = occurredAt.UTC()
	return &DomainEvent{
		EventID:       eventID,
		Kind:          kind,
		AggregateID:   videoID,
		AggregateType: AggregateTypeVideo,
		Version:       VersionFromTime(occurredAt),
		OccurredAt:    occurredAt,
		Payload:       payload,
	}, nil
}

func fallbackTime(primary, secondary time.Time) time.Time {
	if !primary.IsZero() {
		return primary
	}
	return secondary
}
