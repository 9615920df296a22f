package outboxevents

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope 是写入 outbox payload 的 JSON 结构，下游按 event_type 解析 data。
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	Version       int64           `json:"version"`
	OccurredAt    string          `json:"occurred_at"`
	Data          json.RawMessage `json:"data"`
}

// Marshal 将领域事件编码为 JSON Envelope。
func Marshal(evt *DomainEvent) ([]byte, error) {
	if evt == nil {
		return nil, fmt.Errorf("events: nil domain event")
	}
	switch evt.Payload.(type) {
	case *VideoCreated, *VideoUpdated, *VideoDeleted, *VideoCommented:
	default:
		return nil, fmt.Errorf("events: unsupported payload type %T", evt.Payload)
	}
	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	return json.Marshal(Envelope{
		EventID:       evt.EventID.String(),
		EventType:     FormatEventType(evt.Kind),
		AggregateID:   evt.AggregateID.String(),
		AggregateType: evt.AggregateType,
		Version:       evt.Version,
		OccurredAt:    evt.OccurredAt.UTC().Format(time.RFC3339Nano),
		Data:          data,
	})
}
