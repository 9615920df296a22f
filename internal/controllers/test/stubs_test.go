package controllers_test

import (
	"context"

	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/google/uuid"
)

type lifecycleServiceStub struct {
	createFn  func(context.Context, services.CreateVideoInput) (*vo.Video, error)
	editFn    func(context.Context, services.EditVideoInput) (*vo.Video, error)
	deleteFn  func(context.Context, services.DeleteVideoInput) (*services.DeleteVideoResult, error)
	viewFn    func(context.Context, uuid.UUID) (int64, error)
	commentFn func(context.Context, services.AddCommentInput) (*vo.Comment, error)
}

func (s *lifecycleServiceStub) CreateVideo(ctx context.Context, in services.CreateVideoInput) (*vo.Video, error) {
	return s.createFn(ctx, in)
}

func (s *lifecycleServiceStub) EditVideo(ctx context.Context, in services.EditVideoInput) (*vo.Video, error) {
	return s.editFn(ctx, in)
}

func (s *lifecycleServiceStub) DeleteVideo(ctx context.Context, in services.DeleteVideoInput) (*services.DeleteVideoResult, error) {
	return s.deleteFn(ctx, in)
}

func (s *lifecycleServiceStub) RegisterView(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.viewFn(ctx, id)
}

func (s *lifecycleServiceStub) AddComment(ctx context.Context, in services.AddCommentInput) (*vo.Comment, error) {
	return s.commentFn(ctx, in)
}

type queryServiceStub struct {
	getFn    func(context.Context, uuid.UUID) (*vo.VideoDetail, error)
	searchFn func(context.Context, string) []*vo.Video
	homeFn   func(context.Context) []*vo.Video
	ownerFn  func(context.Context, uuid.UUID) ([]*vo.Video, error)
}

func (s *queryServiceStub) GetVideo(ctx context.Context, id uuid.UUID) (*vo.VideoDetail, error) {
	return s.getFn(ctx, id)
}

func (s *queryServiceStub) SearchVideos(ctx context.Context, term string) []*vo.Video {
	return s.searchFn(ctx, term)
}

func (s *queryServiceStub) ListHome(ctx context.Context) []*vo.Video {
	return s.homeFn(ctx)
}

func (s *queryServiceStub) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*vo.Video, error) {
	return s.ownerFn(ctx, owner)
}
