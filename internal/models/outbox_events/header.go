// Package outboxevents 定义视频领域事件及其 Outbox 编码方式。本文件负责
// 从领域事件中派生 Pub/Sub message attributes，订阅方可直接按属性过滤。
package outboxevents

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ContentTypeJSON 标识 payload 的编码格式。
const ContentTypeJSON = "application/json"

// Message attribute 键。
const (
	AttrEventID        = "event_id"
	AttrEventType      = "event_type"
	AttrVideoID        = "video_id"
	AttrAggregateType  = "aggregate_type"
	AttrVersion        = "version"
	AttrOccurredAt     = "occurred_at"
	AttrSchemaVersion  = "schema_version"
	AttrContentType    = "content_type"
	AttrTraceID        = "trace_id"
	AttrIdempotencyKey = "idempotency_key"
	AttrCommentID      = "comment_id"
	AttrMediaDeleted   = "media_deleted"
)

// AttributeOptions 是写入 attributes 的请求级信息。
type AttributeOptions struct {
	SchemaVersion  string
	TraceID        string
	IdempotencyKey string
}

// FormatEventType 将事件种类映射为语义化字符串。
func FormatEventType(kind Kind) string {
	return kind.String()
}

// BuildAttributes 构造 message attributes。删除事件额外带 media_deleted，
// 评论事件带 comment_id，便于订阅端用 filter 只接收关心的事件。
func BuildAttributes(event *DomainEvent, opts AttributeOptions) map[string]string {
	if opts.SchemaVersion == "" {
		opts.SchemaVersion = SchemaVersionV1
	}
	attrs := map[string]string{
		AttrEventID:       event.EventID.String(),
		AttrEventType:     FormatEventType(event.Kind),
		AttrVideoID:       event.AggregateID.String(),
		AttrAggregateType: event.AggregateType,
		AttrVersion:       strconv.FormatInt(event.Version, 10),
		AttrOccurredAt:    event.OccurredAt.UTC().Format(time.RFC3339Nano),
		AttrSchemaVersion: opts.SchemaVersion,
		AttrContentType:   ContentTypeJSON,
	}
	switch payload := event.Payload.(type) {
	case *VideoDeleted:
		attrs[AttrMediaDeleted] = strconv.FormatBool(payload.MediaDeleted)
	case *VideoCommented:
		attrs[AttrCommentID] = payload.CommentID.String()
	}
	if opts.TraceID != "" {
		attrs[AttrTraceID] = opts.TraceID
	}
	if opts.IdempotencyKey != "" {
		attrs[AttrIdempotencyKey] = opts.IdempotencyKey
	}
	return attrs
}

// TraceIDFromContext 提取 OTel Trace ID，没有有效 span 时返回空串。
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
		return spanCtx.TraceID().String()
	}
	return ""
}

// VersionFromTime 以 UTC 微秒作为聚合版本号。
func VersionFromTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMicro()
}
