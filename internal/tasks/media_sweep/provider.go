package mediasweep

import (
	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/go-kratos/kratos/v2/log"
)

// ProvideRunner 装配回收 Runner，构造失败时返回 nil 并记录日志。
func ProvideRunner(svc *services.MediaSweepService, cfg configloader.SweepConfig, logger log.Logger) *Runner {
	if svc == nil || logger == nil {
		return nil
	}
	runner, err := NewRunner(RunnerParams{
		Sweeper:  svc,
		Interval: cfg.Interval,
		Logger:   logger,
	})
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init media sweep runner failed", "error", err)
		return nil
	}
	return runner
}
