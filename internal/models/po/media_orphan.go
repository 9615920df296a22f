package po

import (
	"time"

	"github.com/google/uuid"
)

// OrphanReason 标识媒体对象成为孤儿的原因。
type OrphanReason string

// 孤儿原因常量。
const (
	OrphanReasonCreateFailed OrphanReason = "create_failed" // 对象已写入但元数据创建失败
	OrphanReasonDeleteFailed OrphanReason = "delete_failed" // 元数据已删除但对象删除失败
)

// MediaOrphan 对应 tube.media_orphans 表，记录待回收的媒体对象。
type MediaOrphan struct {
	OrphanID    uuid.UUID
	Locator     string
	VideoID     *uuid.UUID
	Reason      OrphanReason
	Attempts    int32
	LastError   *string
	AvailableAt time.Time
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}
