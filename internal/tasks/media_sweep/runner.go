// Package mediasweep 周期性回收删除或创建失败时遗留的媒体对象。
package mediasweep

import (
	"context"
	"fmt"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/go-kratos/kratos/v2/log"
)

// Sweeper 抽象单轮回收能力，由 services.MediaSweepService 实现。
type Sweeper interface {
	SweepOnce(ctx context.Context) (services.SweepResult, error)
	CountPending(ctx context.Context) (int64, error)
}

// Runner 按固定间隔驱动 Sweeper。
type Runner struct {
	sweeper  Sweeper
	interval time.Duration
	metrics  *metrics
	log      *log.Helper
}

// RunnerParams 注入 Runner 所需依赖。
type RunnerParams struct {
	Sweeper  Sweeper
	Interval time.Duration
	Logger   log.Logger
}

// NewRunner 构造回收 Runner。
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Sweeper == nil {
		return nil, fmt.Errorf("mediasweep: sweeper is required")
	}
	if params.Interval <= 0 {
		return nil, fmt.Errorf("mediasweep: interval must be positive")
	}
	logger := params.Logger
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Runner{
		sweeper:  params.Sweeper,
		interval: params.Interval,
		metrics:  newMetrics(),
		log:      log.NewHelper(log.With(logger, "component", "media_sweep")),
	}, nil
}

// Run 立即执行一轮，随后按间隔循环，ctx 取消时返回 ctx.Err()。
func (r *Runner) Run(ctx context.Context) error {
	if r == nil {
		return nil
	}
	r.log.Infof("media sweep started: interval=%s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.tick(ctx)
		select {
		case <-ctx.Done():
			r.log.Info("media sweep stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// tick 执行一轮回收，单轮失败只记录日志，下一轮继续。
func (r *Runner) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	result, err := r.sweeper.SweepOnce(ctx)
	r.metrics.recordRound(ctx, result, time.Since(start), err)
	if err != nil {
		r.log.WithContext(ctx).Warnf("media sweep round failed: %v", err)
		return
	}
	if result.Claimed > 0 {
		r.log.WithContext(ctx).Infof("media sweep round: claimed=%d resolved=%d retained=%d rescheduled=%d",
			result.Claimed, result.Resolved, result.Retained, result.Rescheduled)
	}

	pending, err := r.sweeper.CountPending(ctx)
	if err != nil {
		r.log.WithContext(ctx).Debugf("count pending orphans: %v", err)
		return
	}
	r.metrics.recordPending(pending)
}
