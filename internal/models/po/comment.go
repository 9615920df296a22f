package po

import (
	"time"

	"github.com/google/uuid"
)

// Comment 对应 tube.comments 表。
type Comment struct {
	CommentID uuid.UUID
	CreatorID uuid.UUID
	Text      string
	CreatedAt time.Time
}
