// Package dto 定义 HTTP 请求与响应体，以及 VO 到响应体的转换。
package dto

import (
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"

	"github.com/google/uuid"
)

// Video 是视频的 JSON 响应体。
type Video struct {
	ID          string   `json:"id"`
	CreatorID   string   `json:"creator_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileURL     string   `json:"file_url"`
	Views       int64    `json:"views"`
	CommentIDs  []string `json:"comment_ids"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Comment 是评论的 JSON 响应体。
type Comment struct {
	ID        string `json:"id"`
	CreatorID string `json:"creator_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// VideoDetail 附带评论正文。
type VideoDetail struct {
	Video
	Comments []Comment `json:"comments"`
}

// VideoList 是列表接口的响应体。
type VideoList struct {
	Videos []Video `json:"videos"`
}

// ViewCount 是播放计数接口的响应体。
type ViewCount struct {
	VideoID string `json:"video_id"`
	Views   int64  `json:"views"`
}

// DeleteVideoResult 是删除接口的响应体；Warning 非空表示媒体对象未能同步删除。
type DeleteVideoResult struct {
	VideoID         string `json:"video_id"`
	MetadataDeleted bool   `json:"metadata_deleted"`
	MediaDeleted    bool   `json:"media_deleted"`
	Warning         string `json:"warning,omitempty"`
}

// EditVideoRequest 为 PATCH 请求体，缺省字段保持不变。
type EditVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// AddCommentRequest 为评论请求体。
type AddCommentRequest struct {
	Text string `json:"text"`
}

// ParseVideoID 解析路径中的视频 ID。
func ParseVideoID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid video id: %w", err)
	}
	return id, nil
}

// ParseUserID 解析路径中的用户 ID。
func ParseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id: %w", err)
	}
	return id, nil
}

// NewVideo 将 VO 转换为响应体。
func NewVideo(v *vo.Video) Video {
	if v == nil {
		return Video{CommentIDs: []string{}}
	}
	ids := make([]string, 0, len(v.CommentIDs))
	for _, id := range v.CommentIDs {
		ids = append(ids, id.String())
	}
	return Video{
		ID:          v.VideoID.String(),
		CreatorID:   v.CreatorID.String(),
		Title:       v.Title,
		Description: v.Description,
		FileURL:     v.FileURL,
		Views:       v.Views,
		CommentIDs:  ids,
		CreatedAt:   FormatTime(v.CreatedAt),
		UpdatedAt:   FormatTime(v.UpdatedAt),
	}
}

// NewVideoList 保持输入顺序。
func NewVideoList(items []*vo.Video) VideoList {
	videos := make([]Video, 0, len(items))
	for _, it := range items {
		if it != nil {
			videos = append(videos, NewVideo(it))
		}
	}
	return VideoList{Videos: videos}
}

// NewComment 将评论 VO 转换为响应体。
func NewComment(c *vo.Comment) Comment {
	if c == nil {
		return Comment{}
	}
	return Comment{
		ID:        c.CommentID.String(),
		CreatorID: c.CreatorID.String(),
		Text:      c.Text,
		CreatedAt: FormatTime(c.CreatedAt),
	}
}

// NewVideoDetail 组装详情响应。
func NewVideoDetail(detail *vo.VideoDetail) VideoDetail {
	if detail == nil {
		return VideoDetail{Video: NewVideo(nil), Comments: []Comment{}}
	}
	comments := make([]Comment, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, NewComment(c))
	}
	return VideoDetail{Video: NewVideo(&detail.Video), Comments: comments}
}

// FormatTime 统一输出 RFC3339Nano，零值输出空串。
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
