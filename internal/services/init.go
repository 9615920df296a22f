// Package services 包含应用业务用例的编排逻辑。
// 该层协调 Repository 与媒体存储，实现核心业务规则，不直接依赖传输层细节。
package services

import "github.com/google/wire"

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
var ProviderSet = wire.NewSet(
	NewVideoLifecycleService,
	NewVideoQueryService,
	NewMediaSweepService,
)
