// Package po 定义面向持久化的数据对象（Persistent Objects），由 Repository 层使用。
// PO 对象映射数据库表结构，不直接暴露给上层业务逻辑。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Video 对应 tube.videos 表的完整记录。
type Video struct {
	VideoID     uuid.UUID   // 主键，UUIDv7
	CreatedSeq  int64       // 插入序号，决定首页倒序
	CreatorID   uuid.UUID   // 上传者
	Title       string      // 标题
	Description string      // 描述
	FileURL     string      // 媒体存储返回的 locator，创建后不可变
	Views       int64       // 播放次数，仅通过原子自增修改
	CommentIDs  []uuid.UUID // 评论 ID，按追加顺序
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy 判断 userID 是否为视频所有者。
// 所有归属判断都必须走这里，保证比较语义唯一。
func (v *Video) IsOwnedBy(userID uuid.UUID) bool {
	if v == nil || userID == uuid.Nil {
		return false
	}
	return v.CreatorID == userID
}
