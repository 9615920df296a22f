package vo_test

import (
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideoFromPO(t *testing.T) {
	now := time.Now().UTC()
	videoID := uuid.New()
	creator := uuid.New()

	tests := []struct {
		name     string
		input    *po.Video
		expected *vo.Video
	}{
		{
			name: "完整实体转换",
			input: &po.Video{
				VideoID:     videoID,
				CreatorID:   creator,
				Title:       "测试视频",
				Description: "描述",
				FileURL:     "https://media.example.com/videos/a.mp4",
				Views:       7,
				CommentIDs:  []uuid.UUID{videoID},
				CreatedAt:   now,
				UpdatedAt:   now.Add(time.Hour),
			},
			expected: &vo.Video{
				VideoID:     videoID,
				CreatorID:   creator,
				Title:       "测试视频",
				Description: "描述",
				FileURL:     "https://media.example.com/videos/a.mp4",
				Views:       7,
				CommentIDs:  []uuid.UUID{videoID},
				CreatedAt:   now,
				UpdatedAt:   now.Add(time.Hour),
			},
		},
		{
			name:  "评论为空时返回空切片",
			input: &po.Video{VideoID: videoID, CreatorID: creator, Title: "空"},
			expected: &vo.Video{
				VideoID:    videoID,
				CreatorID:  creator,
				Title:      "空",
				CommentIDs: []uuid.UUID{},
			},
		},
		{
			name:     "nil 输入",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vo.NewVideoFromPO(tt.input))
		})
	}
}

func TestNewVideoDetail_OrdersCommentsByAppend(t *testing.T) {
	first := &po.Comment{CommentID: uuid.New(), Text: "first"}
	second := &po.Comment{CommentID: uuid.New(), Text: "second"}
	missing := uuid.New()
	video := &po.Video{
		VideoID:    uuid.New(),
		CommentIDs: []uuid.UUID{first.CommentID, missing, second.CommentID},
	}

	detail := vo.NewVideoDetail(video, []*po.Comment{second, first})
	require.NotNil(t, detail)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "first", detail.Comments[0].Text)
	assert.Equal(t, "second", detail.Comments[1].Text)
	assert.Len(t, detail.CommentIDs, 3)
}

func TestNewVideoList_SkipsNil(t *testing.T) {
	a := &po.Video{VideoID: uuid.New()}
	b := &po.Video{VideoID: uuid.New()}
	items := vo.NewVideoList([]*po.Video{a, nil, b})
	require.Len(t, items, 2)
	assert.Equal(t, a.VideoID, items[0].VideoID)
	assert.Equal(t, b.VideoID, items[1].VideoID)
}
