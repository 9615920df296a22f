package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepository 访问 tube.comments。
type CommentRepository struct {
	db      *pgxpool.Pool
	queries *tubedb.Queries
	log     *log.Helper
}

// NewCommentRepository 构造仓储实例。
func NewCommentRepository(db *pgxpool.Pool, logger log.Logger) *CommentRepository {
	return &CommentRepository{
		db:      db,
		queries: tubedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 写入一条评论，评论 ID 为 UUIDv7。
func (r *CommentRepository) Create(ctx context.Context, sess txmanager.Session, creatorID uuid.UUID, text string) (*po.Comment, error) {
	commentID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate comment id: %w", err)
	}

	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}

	row, err := queries.CreateComment(ctx, tubedb.CreateCommentParams{
		CommentID: commentID,
		CreatorID: creatorID,
		Text:      text,
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create comment failed: creator=%s err=%v", creatorID, err)
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return mappers.CommentFromRow(row), nil
}

// ListByIDs 批量读取评论，返回顺序不保证与入参一致。
func (r *CommentRepository) ListByIDs(ctx context.Context, sess txmanager.Session, ids []uuid.UUID) ([]*po.Comment, error) {
	if len(ids) == 0 {
		return []*po.Comment{}, nil
	}

	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}

	rows, err := queries.ListCommentsByIDs(ctx, ids)
	if err != nil {
		r.log.WithContext(ctx).Errorf("list comments failed: count=%d err=%v", len(ids), err)
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]*po.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mappers.CommentFromRow(row))
	}
	return comments, nil
}
