// Package metadata 解析网关注入的调用方身份与幂等键，并提供在 Context 中的存取工具。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// 入站 Header 名称。网关把 JWT claims 以 base64 JSON 形式写入 userinfo 头。
const (
	HeaderUserInfo          = "x-apigateway-api-userinfo"
	HeaderIdempotencyKey    = "x-md-idempotency-key"
	HeaderStdIdempotencyKey = "Idempotency-Key"
)

var (
	// ErrMissingCaller 表示请求未携带调用方身份。
	ErrMissingCaller = errors.New("metadata: caller identity missing")
	// ErrInvalidCaller 表示身份头无法解析或不是 UUID。
	ErrInvalidCaller = errors.New("metadata: caller identity invalid")
)

// HandlerMetadata 描述一次请求的调用方与幂等信息。
type HandlerMetadata struct {
	IdempotencyKey  string
	UserID          string
	RawUserInfo     string
	InvalidUserInfo bool
}

// FromHeaders 通过 get 读取 Header 构造 HandlerMetadata，get 通常是 transport.Header.Get。
func FromHeaders(get func(key string) string) HandlerMetadata {
	meta := HandlerMetadata{
		IdempotencyKey: firstValue(get, HeaderIdempotencyKey, HeaderStdIdempotencyKey),
		RawUserInfo:    firstValue(get, HeaderUserInfo),
	}
	if meta.RawUserInfo == "" {
		return meta
	}
	userID, err := ExtractUserIDFromUserInfo(meta.RawUserInfo)
	if err != nil || userID == "" {
		meta.InvalidUserInfo = true
		return meta
	}
	meta.UserID = userID
	return meta
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m == HandlerMetadata{}
}

// Caller 返回调用方 UUID。
func (m HandlerMetadata) Caller() (uuid.UUID, error) {
	if m.InvalidUserInfo {
		return uuid.Nil, ErrInvalidCaller
	}
	raw := strings.TrimSpace(m.UserID)
	if raw == "" {
		return uuid.Nil, ErrMissingCaller
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidCaller
	}
	return id, nil
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}

// ExtractUserIDFromUserInfo 依次尝试 sub、user_id、uid 三个 claim。
func ExtractUserIDFromUserInfo(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	payload, err := decodeUserInfo(raw)
	if err != nil {
		return "", err
	}
	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", err
	}
	for _, key := range []string{"sub", "user_id", "uid"} {
		if value, ok := claims[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", nil
}

func decodeUserInfo(raw string) ([]byte, error) {
	// 网关与测试工具的 padding 习惯不一致
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if payload, err := enc.DecodeString(raw); err == nil {
			return payload, nil
		}
	}
	return nil, errors.New("decode userinfo header failed")
}

func firstValue(get func(string) string, keys ...string) string {
	if get == nil {
		return ""
	}
	for _, key := range keys {
		if value := strings.TrimSpace(get(key)); value != "" {
			return value
		}
	}
	return ""
}
