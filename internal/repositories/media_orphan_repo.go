package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories/tubedb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordMediaOrphanInput 描述一次孤儿登记。
type RecordMediaOrphanInput struct {
	Locator   string
	VideoID   *uuid.UUID
	Reason    po.OrphanReason
	LastError *string
}

// MediaOrphanRepository 访问 tube.media_orphans。
type MediaOrphanRepository struct {
	db      *pgxpool.Pool
	queries *tubedb.Queries
	log     *log.Helper
}

// NewMediaOrphanRepository 构造仓储实例。
func NewMediaOrphanRepository(db *pgxpool.Pool, logger log.Logger) *MediaOrphanRepository {
	return &MediaOrphanRepository{
		db:      db,
		queries: tubedb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Record 登记一条待回收的媒体对象。
func (r *MediaOrphanRepository) Record(ctx context.Context, sess txmanager.Session, input RecordMediaOrphanInput) (*po.MediaOrphan, error) {
	orphanID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate orphan id: %w", err)
	}

	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}

	row, err := queries.InsertMediaOrphan(ctx, mappers.BuildInsertMediaOrphanParams(orphanID, input.Locator, input.VideoID, input.Reason, input.LastError))
	if err != nil {
		r.log.WithContext(ctx).Errorf("record media orphan failed: locator=%s err=%v", input.Locator, err)
		return nil, fmt.Errorf("record media orphan: %w", err)
	}
	r.log.WithContext(ctx).Warnf("media orphan recorded: orphan_id=%s locator=%s reason=%s", row.OrphanID, row.Locator, row.Reason)
	return mappers.MediaOrphanFromRow(row), nil
}

// Claim 领取一批到期且未超过重试上限的孤儿，并把 available_at 推到 leaseUntil 作为租约。
func (r *MediaOrphanRepository) Claim(ctx context.Context, now, leaseUntil time.Time, maxAttempts, limit int) ([]*po.MediaOrphan, error) {
	rows, err := r.queries.ClaimMediaOrphans(ctx, tubedb.ClaimMediaOrphansParams{
		LeaseUntil:      mappers.ToPgTimestamptz(leaseUntil),
		AvailableBefore: mappers.ToPgTimestamptz(now),
		MaxAttempts:     int32(maxAttempts),
		BatchSize:       int32(limit),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("claim media orphans failed: err=%v", err)
		return nil, fmt.Errorf("claim media orphans: %w", err)
	}

	orphans := make([]*po.MediaOrphan, 0, len(rows))
	for _, row := range rows {
		orphans = append(orphans, mappers.MediaOrphanFromRow(row))
	}
	return orphans, nil
}

// LocatorInUse 判断是否仍有视频记录引用该 locator。
func (r *MediaOrphanRepository) LocatorInUse(ctx context.Context, locator string) (bool, error) {
	inUse, err := r.queries.MediaOrphanLocatorInUse(ctx, locator)
	if err != nil {
		r.log.WithContext(ctx).Errorf("check media locator usage failed: locator=%s err=%v", locator, err)
		return false, fmt.Errorf("check media locator usage: %w", err)
	}
	return inUse, nil
}

// Resolve 标记孤儿已回收。
func (r *MediaOrphanRepository) Resolve(ctx context.Context, orphanID uuid.UUID, resolvedAt time.Time) error {
	if err := r.queries.ResolveMediaOrphan(ctx, tubedb.ResolveMediaOrphanParams{
		OrphanID:   orphanID,
		ResolvedAt: mappers.ToPgTimestamptz(resolvedAt),
	}); err != nil {
		r.log.WithContext(ctx).Errorf("resolve media orphan failed: orphan_id=%s err=%v", orphanID, err)
		return fmt.Errorf("resolve media orphan: %w", err)
	}
	return nil
}

// Reschedule 记录失败原因，attempts+1，并在 nextAvailable 之后重试。
func (r *MediaOrphanRepository) Reschedule(ctx context.Context, orphanID uuid.UUID, nextAvailable time.Time, lastErr string) error {
	if err := r.queries.RescheduleMediaOrphan(ctx, tubedb.RescheduleMediaOrphanParams{
		OrphanID:    orphanID,
		LastError:   mappers.ToPgText(&lastErr),
		AvailableAt: mappers.ToPgTimestamptz(nextAvailable),
	}); err != nil {
		r.log.WithContext(ctx).Errorf("reschedule media orphan failed: orphan_id=%s err=%v", orphanID, err)
		return fmt.Errorf("reschedule media orphan: %w", err)
	}
	return nil
}

// CountPending 返回尚未回收的孤儿数量。
func (r *MediaOrphanRepository) CountPending(ctx context.Context) (int64, error) {
	count, err := r.queries.CountPendingMediaOrphans(ctx)
	if err != nil {
		return 0, fmt.Errorf("count media orphans: %w", err)
	}
	return count, nil
}
