package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// VideoQueryService 提供只读查询。首页与搜索在存储异常时降级为空列表。
type VideoQueryService struct {
	videos    VideoRepo
	comments  CommentRepo
	txManager txmanager.Manager
	log       *log.Helper
}

// NewVideoQueryService 构造查询服务。
func NewVideoQueryService(videos VideoRepo, comments CommentRepo, tx txmanager.Manager, logger log.Logger) *VideoQueryService {
	return &VideoQueryService{
		videos:    videos,
		comments:  comments,
		txManager: tx,
		log:       log.NewHelper(logger),
	}
}

// GetVideo 返回视频详情及按追加顺序排列的评论。
func (s *VideoQueryService) GetVideo(ctx context.Context, videoID uuid.UUID) (*vo.VideoDetail, error) {
	if videoID == uuid.Nil {
		return nil, invalidArgument("video_id is required")
	}

	var (
		video    *po.Video
		comments []*po.Comment
	)
	err := s.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		video, repoErr = s.videos.Get(txCtx, sess, videoID)
		if repoErr != nil {
			return repoErr
		}
		comments, repoErr = s.comments.ListByIDs(txCtx, sess, video.CommentIDs)
		return repoErr
	})
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.WithContext(ctx).Warnf("get video timeout: video_id=%s", videoID)
			return nil, errors.GatewayTimeout(ReasonQueryTimeout, "query timeout")
		}
		s.log.WithContext(ctx).Errorf("get video failed: video_id=%s err=%v", videoID, err)
		return nil, errors.InternalServer(ReasonQueryVideoFailed, "failed to query video").WithCause(fmt.Errorf("get video: %w", err))
	}

	return vo.NewVideoDetail(video, comments), nil
}

// SearchVideos 按标题做大小写不敏感的字面子串匹配，空关键字返回全部视频。
// 查询失败时记录日志并返回空列表。
func (s *VideoQueryService) SearchVideos(ctx context.Context, term string) []*vo.Video {
	term = strings.TrimSpace(term)
	videos, err := s.videos.SearchByTitle(ctx, nil, term)
	if err != nil {
		s.log.WithContext(ctx).Errorf("search videos failed, returning empty list: term=%q err=%v", term, err)
		return []*vo.Video{}
	}
	return vo.NewVideoList(videos)
}

// ListHome 返回首页视频，最新创建的在前；查询失败时返回空列表。
func (s *VideoQueryService) ListHome(ctx context.Context) []*vo.Video {
	videos, err := s.videos.ListRecent(ctx, nil)
	if err != nil {
		s.log.WithContext(ctx).Errorf("list home videos failed, returning empty list: err=%v", err)
		return []*vo.Video{}
	}
	return vo.NewVideoList(videos)
}

// ListByOwner 返回某个用户上传的全部视频。
func (s *VideoQueryService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*vo.Video, error) {
	if ownerID == uuid.Nil {
		return nil, invalidArgument("owner is required")
	}
	videos, err := s.videos.ListByCreator(ctx, nil, ownerID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.GatewayTimeout(ReasonQueryTimeout, "query timeout")
		}
		s.log.WithContext(ctx).Errorf("list owner videos failed: owner=%s err=%v", ownerID, err)
		return nil, errors.InternalServer(ReasonQueryVideoFailed, "failed to list videos").WithCause(fmt.Errorf("list by owner: %w", err))
	}
	return vo.NewVideoList(videos), nil
}
