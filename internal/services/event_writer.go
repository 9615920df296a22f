package services

import (
	"context"
	"fmt"
	"time"

	outboxevents "github.com/bionicotaku/lingo-services-tube/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
)

// 写入 outbox 指标的 operation 标签。
const (
	opCreateVideo = "create_video"
	opEditVideo   = "edit_video"
	opDeleteVideo = "delete_video"
	opAddComment  = "add_comment"
)

type operationMetadata struct {
	Operation      string
	IdempotencyKey string
}

func (m operationMetadata) operationName() string {
	if m.Operation == "" {
		return "unknown"
	}
	return m.Operation
}

// eventWriter 在业务事务内把领域事件写入 Outbox。
type eventWriter struct {
	outbox  OutboxEnqueuer
	metrics *outboxMetrics
}

func newEventWriter(outbox OutboxEnqueuer, component string) *eventWriter {
	return &eventWriter{outbox: outbox, metrics: newOutboxMetrics(component)}
}

func (w *eventWriter) enqueue(ctx context.Context, sess txmanager.Session, event *outboxevents.DomainEvent, meta operationMetadata) error {
	eventType := outboxevents.FormatEventType(event.Kind)
	payload, err := outboxevents.Marshal(event)
	if err != nil {
		w.metrics.recordFailure(ctx, eventType, meta, enqueueStageEncode, err)
		return fmt.Errorf("marshal video event: %w", err)
	}

	attributes := outboxevents.BuildAttributes(event, outboxevents.AttributeOptions{
		SchemaVersion:  outboxevents.SchemaVersionV1,
		TraceID:        outboxevents.TraceIDFromContext(ctx),
		IdempotencyKey: meta.IdempotencyKey,
	})

	availableAt := event.OccurredAt
	if availableAt.IsZero() {
		availableAt = time.Now().UTC()
	}

	msg := repositories.OutboxMessage{
		EventID:       event.EventID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     eventType,
		Payload:       payload,
		Headers:       attributes,
		AvailableAt:   availableAt,
	}
	if err := w.outbox.Enqueue(ctx, sess, msg); err != nil {
		w.metrics.recordFailure(ctx, eventType, meta, enqueueStageStore, err)
		return fmt.Errorf("enqueue outbox: %w", err)
	}
	w.metrics.recordSuccess(ctx, eventType, meta, event.OccurredAt)
	return nil
}
