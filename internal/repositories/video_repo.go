// Package repositories 实现数据访问层，封装 sqlc 生成的查询方法。
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVideoNotFound 表示请求的视频不存在。
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository 提供 tube.videos 的持久化访问能力。
type VideoRepository struct {
	db      *pgxpool.Pool
	queries *tubedb.Queries
	log     *log.Helper
}

// NewVideoRepository 构造 VideoRepository 实例（供 Wire 注入使用）。
func NewVideoRepository(db *pgxpool.Pool, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:      db,
		queries: tubedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateVideoInput 表示创建视频的输入参数。
type CreateVideoInput struct {
	VideoID     uuid.UUID // 为空时生成 UUIDv7
	CreatorID   uuid.UUID
	Title       string
	Description string
	FileURL     string
}

// UpdateVideoFieldsInput 描述可编辑字段，nil 表示不修改。
type UpdateVideoFieldsInput struct {
	VideoID     uuid.UUID
	Title       *string
	Description *string
}

func (r *VideoRepository) queriesFor(sess txmanager.Session) *tubedb.Queries {
	if sess != nil {
		return r.queries.WithTx(sess.Tx())
	}
	return r.queries
}

// Create 插入新视频，views=0、comment_ids 为空。
func (r *VideoRepository) Create(ctx context.Context, sess txmanager.Session, input CreateVideoInput) (*po.Video, error) {
	videoID := input.VideoID
	if videoID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate video id: %w", err)
		}
		videoID = id
	}

	record, err := r.queriesFor(sess).CreateVideo(ctx, mappers.BuildCreateVideoParams(
		videoID,
		input.CreatorID,
		input.Title,
		input.Description,
		input.FileURL,
	))
	if err != nil {
		r.log.WithContext(ctx).Errorf("create video failed: title=%s err=%v", input.Title, err)
		return nil, fmt.Errorf("create video: %w", err)
	}

	r.log.WithContext(ctx).Infof("video created: video_id=%s title=%s", record.VideoID, record.Title)
	return mappers.VideoFromRow(record), nil
}

// Get 按 ID 读取视频。
func (r *VideoRepository) Get(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (*po.Video, error) {
	record, err := r.queriesFor(sess).GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("get video failed: video_id=%s err=%v", videoID, err)
		return nil, fmt.Errorf("get video: %w", err)
	}
	return mappers.VideoFromRow(record), nil
}

// ListRecent 按插入顺序倒序返回全部视频。
func (r *VideoRepository) ListRecent(ctx context.Context, sess txmanager.Session) ([]*po.Video, error) {
	records, err := r.queriesFor(sess).ListRecentVideos(ctx)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list recent videos failed: err=%v", err)
		return nil, fmt.Errorf("list recent videos: %w", err)
	}
	return mappers.VideosFromRows(records), nil
}

// SearchByTitle 按标题做大小写不敏感的字面子串匹配，term 不会被解释为通配符或正则。
func (r *VideoRepository) SearchByTitle(ctx context.Context, sess txmanager.Session, term string) ([]*po.Video, error) {
	records, err := r.queriesFor(sess).SearchVideosByTitle(ctx, term)
	if err != nil {
		r.log.WithContext(ctx).Errorf("search videos failed: term=%q err=%v", term, err)
		return nil, fmt.Errorf("search videos: %w", err)
	}
	return mappers.VideosFromRows(records), nil
}

// ListByCreator 返回某用户上传的视频（经由 user_videos 反向引用）。
func (r *VideoRepository) ListByCreator(ctx context.Context, sess txmanager.Session, userID uuid.UUID) ([]*po.Video, error) {
	records, err := r.queriesFor(sess).ListVideosByCreator(ctx, userID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list videos by creator failed: user_id=%s err=%v", userID, err)
		return nil, fmt.Errorf("list videos by creator: %w", err)
	}
	return mappers.VideosFromRows(records), nil
}

// UpdateFields 仅更新给定的 title/description。
func (r *VideoRepository) UpdateFields(ctx context.Context, sess txmanager.Session, input UpdateVideoFieldsInput) (*po.Video, error) {
	record, err := r.queriesFor(sess).UpdateVideoFields(ctx, mappers.BuildUpdateVideoFieldsParams(
		input.VideoID,
		input.Title,
		input.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("update video failed: video_id=%s err=%v", input.VideoID, err)
		return nil, fmt.Errorf("update video: %w", err)
	}

	r.log.WithContext(ctx).Infof("video updated: video_id=%s", record.VideoID)
	return mappers.VideoFromRow(record), nil
}

// IncrementViews 原子自增播放数并返回新值。
func (r *VideoRepository) IncrementViews(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	views, err := r.queriesFor(sess).IncrementVideoViews(ctx, videoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("increment views failed: video_id=%s err=%v", videoID, err)
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return views, nil
}

// AppendComment 原子追加评论 ID，返回追加后的评论数。
func (r *VideoRepository) AppendComment(ctx context.Context, sess txmanager.Session, videoID, commentID uuid.UUID) (int32, error) {
	count, err := r.queriesFor(sess).AppendVideoComment(ctx, tubedb.AppendVideoCommentParams{
		CommentID: commentID,
		VideoID:   videoID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrVideoNotFound
		}
		r.log.WithContext(ctx).Errorf("append comment failed: video_id=%s comment_id=%s err=%v", videoID, commentID, err)
		return 0, fmt.Errorf("append comment: %w", err)
	}
	return count, nil
}

// Delete 删除视频记录，记录不存在不视为错误；返回是否实际删除。
func (r *VideoRepository) Delete(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (bool, error) {
	affected, err := r.queriesFor(sess).DeleteVideo(ctx, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete video failed: video_id=%s err=%v", videoID, err)
		return false, fmt.Errorf("delete video: %w", err)
	}
	if affected > 0 {
		r.log.WithContext(ctx).Infof("video deleted: video_id=%s", videoID)
	}
	return affected > 0, nil
}
