package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	"github.com/bionicotaku/lingo-services-tube/internal/models/po"

	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

// MediaSweepConfig 控制孤儿媒体回收的批量与重试策略。
type MediaSweepConfig struct {
	BatchSize     int
	MaxAttempts   int
	Concurrency   int
	LeaseDuration time.Duration
	RetryBackoff  time.Duration
	MaxBackoff    time.Duration
}

func (c MediaSweepConfig) withDefaults() MediaSweepConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if c.LeaseDuration <= 0 {
		c.LeaseDuration = 5 * time.Minute
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 30 * time.Second
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = time.Hour
	}
	return c
}

// SweepResult 汇总一轮回收的结果。Retained 表示 locator 仍被视频引用、只关闭登记不删对象的条目。
type SweepResult struct {
	Claimed     int
	Resolved    int
	Retained    int
	Rescheduled int
}

type sweepOutcome int

const (
	sweepResolved sweepOutcome = iota
	sweepRetained
	sweepRescheduled
)

// MediaSweepService 回收登记在 media_orphans 中的孤儿对象。
type MediaSweepService struct {
	orphans MediaOrphanRepo
	media   mediastore.Store
	cfg     MediaSweepConfig
	log     *log.Helper
	now     func() time.Time
}

// NewMediaSweepService 构造回收服务。
func NewMediaSweepService(orphans MediaOrphanRepo, media mediastore.Store, cfg MediaSweepConfig, logger log.Logger) *MediaSweepService {
	return &MediaSweepService{
		orphans: orphans,
		media:   media,
		cfg:     cfg.withDefaults(),
		log:     log.NewHelper(logger),
		now:     time.Now,
	}
}

// SweepOnce 认领一批到期孤儿并并发删除。删除成功标记 resolved，失败则按指数退避重新排期；
// 仍被视频引用的 locator 不删除对象。
// 仅当仓储读写失败时返回错误，单个对象删除失败不会中断本轮。
func (s *MediaSweepService) SweepOnce(ctx context.Context) (SweepResult, error) {
	now := s.now().UTC()
	orphans, err := s.orphans.Claim(ctx, now, now.Add(s.cfg.LeaseDuration), s.cfg.MaxAttempts, s.cfg.BatchSize)
	if err != nil {
		return SweepResult{}, fmt.Errorf("claim media orphans: %w", err)
	}
	if len(orphans) == 0 {
		return SweepResult{}, nil
	}

	var resolved, retained, rescheduled atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Concurrency)
	for _, orphan := range orphans {
		group.Go(func() error {
			outcome, err := s.sweepOne(groupCtx, orphan)
			if err != nil {
				return err
			}
			switch outcome {
			case sweepResolved:
				resolved.Add(1)
			case sweepRetained:
				retained.Add(1)
			default:
				rescheduled.Add(1)
			}
			return nil
		})
	}
	waitErr := group.Wait()

	result := SweepResult{
		Claimed:     len(orphans),
		Resolved:    int(resolved.Load()),
		Retained:    int(retained.Load()),
		Rescheduled: int(rescheduled.Load()),
	}
	if waitErr != nil {
		return result, waitErr
	}
	return result, nil
}

// CountPending 返回仍待回收的孤儿数量。
func (s *MediaSweepService) CountPending(ctx context.Context) (int64, error) {
	return s.orphans.CountPending(ctx)
}

func (s *MediaSweepService) sweepOne(ctx context.Context, orphan *po.MediaOrphan) (sweepOutcome, error) {
	// 事务提交成功但客户端收到错误时，已提交的视频仍引用该对象，只能关闭登记
	inUse, err := s.orphans.LocatorInUse(ctx, orphan.Locator)
	if err != nil {
		return sweepRescheduled, fmt.Errorf("check orphan %s: %w", orphan.OrphanID, err)
	}
	if inUse {
		if err := s.orphans.Resolve(ctx, orphan.OrphanID, s.now().UTC()); err != nil {
			return sweepRescheduled, fmt.Errorf("resolve orphan %s: %w", orphan.OrphanID, err)
		}
		s.log.WithContext(ctx).Warnf("media orphan still referenced by a video, object kept: orphan_id=%s locator=%s reason=%s", orphan.OrphanID, orphan.Locator, orphan.Reason)
		return sweepRetained, nil
	}

	deleteErr := s.media.Delete(ctx, orphan.Locator)
	if deleteErr == nil {
		if err := s.orphans.Resolve(ctx, orphan.OrphanID, s.now().UTC()); err != nil {
			return sweepRescheduled, fmt.Errorf("resolve orphan %s: %w", orphan.OrphanID, err)
		}
		s.log.WithContext(ctx).Infof("media orphan resolved: orphan_id=%s locator=%s reason=%s", orphan.OrphanID, orphan.Locator, orphan.Reason)
		return sweepResolved, nil
	}

	// Reschedule 会把 attempts 加一，退避按本次失败后的次数计算
	next := s.now().UTC().Add(s.backoff(int(orphan.Attempts) + 1))
	if err := s.orphans.Reschedule(ctx, orphan.OrphanID, next, deleteErr.Error()); err != nil {
		return sweepRescheduled, fmt.Errorf("reschedule orphan %s: %w", orphan.OrphanID, err)
	}
	s.log.WithContext(ctx).Warnf("media orphan delete failed: orphan_id=%s locator=%s attempts=%d err=%v", orphan.OrphanID, orphan.Locator, orphan.Attempts+1, deleteErr)
	return sweepRescheduled, nil
}

func (s *MediaSweepService) backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := s.cfg.RetryBackoff
	for i := 1; i < attempts && delay < s.cfg.MaxBackoff; i++ {
		delay *= 2
	}
	if delay > s.cfg.MaxBackoff {
		delay = s.cfg.MaxBackoff
	}
	return delay
}
