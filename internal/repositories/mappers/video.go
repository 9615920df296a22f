// Package mappers 提供仓储层的模型转换工具，将存储层结果映射为领域实体。
package mappers

import (
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BuildCreateVideoParams 将仓储层输入转换为 sqlc CreateVideoParams。
func BuildCreateVideoParams(videoID, creatorID uuid.UUID, title, description, fileURL string) tubedb.CreateVideoParams {
	return tubedb.CreateVideoParams{
		VideoID:     videoID,
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		FileUrl:     fileURL,
	}
}

// BuildUpdateVideoFieldsParams 将可选字段转换为 sqlc UpdateVideoFieldsParams，nil 表示保持原值。
func BuildUpdateVideoFieldsParams(videoID uuid.UUID, title, description *string) tubedb.UpdateVideoFieldsParams {
	return tubedb.UpdateVideoFieldsParams{
		Title:       ToPgText(title),
		Description: ToPgText(description),
		VideoID:     videoID,
	}
}

// VideoFromRow 将 sqlc 生成的 TubeVideo 转换为领域实体 po.Video。
func VideoFromRow(v tubedb.TubeVideo) *po.Video {
	commentIDs := make([]uuid.UUID, len(v.CommentIds))
	copy(commentIDs, v.CommentIds)
	return &po.Video{
		VideoID:     v.VideoID,
		CreatedSeq:  v.CreatedSeq,
		CreatorID:   v.CreatorID,
		Title:       v.Title,
		Description: v.Description,
		FileURL:     v.FileUrl,
		Views:       v.Views,
		CommentIDs:  commentIDs,
		CreatedAt:   mustTimestamp(v.CreatedAt),
		UpdatedAt:   mustTimestamp(v.UpdatedAt),
	}
}

// VideosFromRows 批量转换。
func VideosFromRows(rows []tubedb.TubeVideo) []*po.Video {
	videos := make([]*po.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, VideoFromRow(row))
	}
	return videos
}

// CommentFromRow 将 TubeComment 转换为 po.Comment。
func CommentFromRow(c tubedb.TubeComment) *po.Comment {
	return &po.Comment{
		CommentID: c.CommentID,
		CreatorID: c.CreatorID,
		Text:      c.Text,
		CreatedAt: mustTimestamp(c.CreatedAt),
	}
}

func mustTimestamp(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time.UTC()
}

func timestampPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	value := t.String
	return &value
}

// ToPgText 将字符串指针转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

// ToPgUUID 将 UUID 指针转换为 pgtype.UUID。
func ToPgUUID(value *uuid.UUID) pgtype.UUID {
	if value == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *value, Valid: true}
}

// ToPgTimestamptz 将 time 转换为 pgtype.Timestamptz，零值视为 NULL。
func ToPgTimestamptz(value time.Time) pgtype.Timestamptz {
	if value.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}
