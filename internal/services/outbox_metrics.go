package services

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outboxMeterName         = "lingo-services-tube.services.outbox"
	outboxSuccessMetricName = "tube_outbox_enqueue_total"
	outboxFailureMetricName = "tube_outbox_enqueue_failures_total"
	outboxLagMetricName     = "tube_outbox_enqueue_lag_ms"
)

// 失败阶段：encode 为序列化事件，store 为写入 outbox 表。
const (
	enqueueStageEncode = "encode"
	enqueueStageStore  = "store"
)

var (
	attrComponent  = attribute.Key("component")
	attrOperation  = attribute.Key("operation")
	attrEventType  = attribute.Key("event_type")
	attrIdempotent = attribute.Key("idempotent")
	attrStage      = attribute.Key("stage")
	attrErrorKind  = attribute.Key("error_kind")
)

// outboxMetrics 记录视频事件写入 outbox 的结果。任一 instrument 创建失败时对应记录为 no-op。
type outboxMetrics struct {
	component string
	enqueued  metric.Int64Counter
	failed    metric.Int64Counter
	lag       metric.Float64Histogram
}

func newOutboxMetrics(component string) *outboxMetrics {
	meter := otel.GetMeterProvider().Meter(outboxMeterName)
	m := &outboxMetrics{component: component}

	if counter, err := meter.Int64Counter(outboxSuccessMetricName,
		metric.WithDescription("Video events written to the tube outbox, by operation")); err == nil {
		m.enqueued = counter
	}
	if counter, err := meter.Int64Counter(outboxFailureMetricName,
		metric.WithDescription("Video event outbox writes that failed, by stage and error kind")); err == nil {
		m.failed = counter
	}
	if hist, err := meter.Float64Histogram(outboxLagMetricName,
		metric.WithDescription("Delay between the video change and its outbox write"),
		metric.WithUnit("ms")); err == nil {
		m.lag = hist
	}
	return m
}

func (m *outboxMetrics) baseAttributes(eventType string, meta operationMetadata) []attribute.KeyValue {
	return []attribute.KeyValue{
		attrComponent.String(m.component),
		attrOperation.String(meta.operationName()),
		attrEventType.String(eventType),
		attrIdempotent.Bool(meta.IdempotencyKey != ""),
	}
}

func (m *outboxMetrics) recordSuccess(ctx context.Context, eventType string, meta operationMetadata, occurredAt time.Time) {
	if m == nil || m.enqueued == nil {
		return
	}
	attrs := metric.WithAttributes(m.baseAttributes(eventType, meta)...)
	m.enqueued.Add(ctx, 1, attrs)
	if m.lag == nil || occurredAt.IsZero() {
		return
	}
	m.lag.Record(ctx, float64(max(time.Since(occurredAt).Milliseconds(), 0)), attrs)
}

func (m *outboxMetrics) recordFailure(ctx context.Context, eventType string, meta operationMetadata, stage string, err error) {
	if m == nil || m.failed == nil {
		return
	}
	attrs := append(m.baseAttributes(eventType, meta),
		attrStage.String(stage),
		attrErrorKind.String(enqueueErrorKind(err)),
	)
	m.failed.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// enqueueErrorKind 把错误归为有限的几类，避免指标维度随错误文本膨胀。
func enqueueErrorKind(err error) string {
	switch {
	case err == nil:
		return "unknown"
	case stderrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case stderrors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}
