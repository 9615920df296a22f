// Package outbox 将 tube.outbox_events 仓储与 Pub/Sub 发布器装配为可运行的
// Outbox Runner，供独立任务进程与 HTTP 进程内后台 worker 复用。
package outbox

import (
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"

	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

// MeterName 为 Outbox 发布器指标使用的 meter 名称。
const MeterName = "lingo-services-tube.outbox"

// ProvideRunner 将共享仓储与 Pub/Sub 发布器包装为 Outbox Runner。
// 未配置 topic 时返回 nil，事件保留在表中等待后续发布。
func ProvideRunner(
	repo *repositories.OutboxRepository,
	publisher gcpubsub.Publisher,
	pubCfg gcpubsub.Config,
	cfg outboxcfg.Config,
	logger log.Logger,
) *outboxpublisher.Runner {
	if repo == nil || logger == nil {
		return nil
	}
	helper := log.NewHelper(logger)
	if pubCfg.TopicID == "" {
		helper.Warn("skip initializing outbox runner: pubsub topic not configured")
		return nil
	}

	publisherCfg := cfg.Normalize().Publisher

	meterProvider := otel.GetMeterProvider()
	if !boolValue(publisherCfg.MetricsEnabled, true) {
		meterProvider = noopmetric.NewMeterProvider()
	}

	if boolValue(publisherCfg.LoggingEnabled, true) {
		helper.Infof("init outbox runner: topic=%s batch_size=%d workers=%d tick_interval=%s",
			pubCfg.TopicID, publisherCfg.BatchSize, publisherCfg.Workers, publisherCfg.TickInterval)
	}

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    publisherCfg,
		Logger:    logger,
		Meter:     meterProvider.Meter(MeterName),
	})
	if err != nil {
		helper.Errorw("msg", "init outbox runner failed", "error", err)
		return nil
	}
	return runner
}

func boolValue(ptr *bool, def bool) bool {
	if ptr == nil {
		return def
	}
	return *ptr
}
