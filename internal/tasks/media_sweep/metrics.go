package mediasweep

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "lingo-services-tube.media_sweep"

type metrics struct {
	objectCounter metric.Int64Counter
	roundCounter  metric.Int64Counter
	durationHist  metric.Float64Histogram
	pending       atomic.Int64
}

func newMetrics() *metrics {
	m := otel.GetMeterProvider().Meter(meterName)
	objectCounter, _ := m.Int64Counter("tube_media_sweep_objects_total",
		metric.WithDescription("Orphaned media objects processed by the sweeper"))
	roundCounter, _ := m.Int64Counter("tube_media_sweep_rounds_total")
	durationHist, _ := m.Float64Histogram("tube_media_sweep_round_duration_ms", metric.WithUnit("ms"))

	out := &metrics{objectCounter: objectCounter, roundCounter: roundCounter, durationHist: durationHist}
	gauge, err := m.Int64ObservableGauge("tube_media_sweep_pending",
		metric.WithDescription("Orphaned media objects waiting for deletion"))
	if err == nil {
		_, _ = m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(gauge, out.pending.Load())
			return nil
		}, gauge)
	}
	return out
}

func (m *metrics) recordRound(ctx context.Context, result services.SweepResult, elapsed time.Duration, err error) {
	if m == nil || m.roundCounter == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.roundCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome)))
	if m.durationHist != nil {
		m.durationHist.Record(ctx, float64(elapsed.Milliseconds()))
	}
	if m.objectCounter == nil {
		return
	}
	if result.Resolved > 0 {
		m.objectCounter.Add(ctx, int64(result.Resolved), metric.WithAttributes(attribute.String("result", "resolved")))
	}
	if result.Retained > 0 {
		m.objectCounter.Add(ctx, int64(result.Retained), metric.WithAttributes(attribute.String("result", "retained")))
	}
	if result.Rescheduled > 0 {
		m.objectCounter.Add(ctx, int64(result.Rescheduled), metric.WithAttributes(attribute.String("result", "rescheduled")))
	}
}

func (m *metrics) recordPending(pending int64) {
	if m == nil {
		return
	}
	m.pending.Store(pending)
}
