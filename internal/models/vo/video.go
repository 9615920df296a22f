// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经 Controller 层转换为 API 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/google/uuid"
)

// Video 是视频的对外视图。
type Video struct {
	VideoID     uuid.UUID   `json:"video_id"`
	CreatorID   uuid.UUID   `json:"creator_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	FileURL     string      `json:"file_url"`
	Views       int64       `json:"views"`
	CommentIDs  []uuid.UUID `json:"comment_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewVideoFromPO 从持久化实体构造 VO。
func NewVideoFromPO(video *po.Video) *Video {
	if video == nil {
		return nil
	}
	ids := video.CommentIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &Video{
		VideoID:     video.VideoID,
		CreatorID:   video.CreatorID,
		Title:       video.Title,
		Description: video.Description,
		FileURL:     video.FileURL,
		Views:       video.Views,
		CommentIDs:  append([]uuid.UUID(nil), ids...),
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
	}
}

// NewVideoList 批量转换，保持输入顺序。
func NewVideoList(videos []*po.Video) []*Video {
	items := make([]*Video, 0, len(videos))
	for _, v := range videos {
		if item := NewVideoFromPO(v); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Comment 是评论的对外视图。
type Comment struct {
	CommentID uuid.UUID `json:"comment_id"`
	CreatorID uuid.UUID `json:"creator_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentFromPO 从持久化实体构造评论 VO。
func NewCommentFromPO(comment *po.Comment) *Comment {
	if comment == nil {
		return nil
	}
	return &Comment{
		CommentID: comment.CommentID,
		CreatorID: comment.CreatorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// VideoDetail 为详情页视图，附带按追加顺序排列的评论正文。
type VideoDetail struct {
	Video
	Comments []*Comment `json:"comments"`
}

// NewVideoDetail 组装详情视图；comments 中缺失的 ID 会被跳过。
func NewVideoDetail(video *po.Video, comments []*po.Comment) *VideoDetail {
	base := NewVideoFromPO(video)
	if base == nil {
		return nil
	}
	byID := make(map[uuid.UUID]*po.Comment, len(comments))
	for _, c := range comments {
		if c != nil {
			byID[c.CommentID] = c
		}
	}
	ordered := make([]*Comment, 0, len(base.CommentIDs))
	for _, id := range base.CommentIDs {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, NewCommentFromPO(c))
		}
	}
	return &VideoDetail{Video: *base, Comments: ordered}
}
