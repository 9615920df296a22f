package mediastore

import "github.com/google/wire"

// ProviderSet 暴露媒体存储构造器。
var ProviderSet = wire.NewSet(NewStore)
