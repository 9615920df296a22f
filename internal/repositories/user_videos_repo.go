package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserVideosRepository 维护用户到视频的反向引用。
type UserVideosRepository struct {
	db      *pgxpool.Pool
	queries *tubedb.Queries
	log     *log.Helper
}

// NewUserVideosRepository 构造仓储实例。
func NewUserVideosRepository(db *pgxpool.Pool, logger log.Logger) *UserVideosRepository {
	return &UserVideosRepository{
		db:      db,
		queries: tubedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Add 记录 userID 拥有 videoID，重复写入幂等。
func (r *UserVideosRepository) Add(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.AddUserVideo(ctx, tubedb.AddUserVideoParams{UserID: userID, VideoID: videoID}); err != nil {
		r.log.WithContext(ctx).Errorf("add user video failed: user=%s video=%s err=%v", userID, videoID, err)
		return fmt.Errorf("add user video: %w", err)
	}
	return nil
}

// Remove 删除反向引用，不存在时忽略。
func (r *UserVideosRepository) Remove(ctx context.Context, sess txmanager.Session, userID, videoID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.RemoveUserVideo(ctx, tubedb.RemoveUserVideoParams{UserID: userID, VideoID: videoID}); err != nil {
		r.log.WithContext(ctx).Errorf("remove user video failed: user=%s video=%s err=%v", userID, videoID, err)
		return fmt.Errorf("remove user video: %w", err)
	}
	return nil
}
