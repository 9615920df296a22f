package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/bionicotaku/lingo-services-tube/internal/services/mocks"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
)

type fakeTxManager struct{}

type fakeSession struct{ ctx context.Context }

func (fakeTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, fakeSession{ctx: ctx})
}

func (fakeSession) Tx() pgx.Tx { return nil }

func (s fakeSession) Context() context.Context { return s.ctx }

func ptrString(v string) *string { return &v }

type lifecycleMocks struct {
	videos     *mocks.MockVideoRepo
	comments   *mocks.MockCommentRepo
	userVideos *mocks.MockUserVideosRepo
	orphans    *mocks.MockMediaOrphanRepo
	outbox     *mocks.MockOutboxEnqueuer
	store      *mocks.MockStore
}

func newLifecycleService(t *testing.T) (*services.VideoLifecycleService, lifecycleMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		videos:     mocks.NewMockVideoRepo(ctrl),
		comments:   mocks.NewMockCommentRepo(ctrl),
		userVideos: mocks.NewMockUserVideosRepo(ctrl),
		orphans:    mocks.NewMockMediaOrphanRepo(ctrl),
		outbox:     mocks.NewMockOutboxEnqueuer(ctrl),
		store:      mocks.NewMockStore(ctrl),
	}
	svc := services.NewVideoLifecycleService(m.videos, m.comments, m.userVideos, m.orphans, m.outbox, m.store, fakeTxManager{}, log.NewStdLogger(io.Discard))
	return svc, m
}
