package mediasweep_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	mediasweep "github.com/bionicotaku/lingo-services-tube/internal/tasks/media_sweep"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

type sweeperStub struct {
	mu      sync.Mutex
	rounds  int
	counts  int
	failing bool
}

func (s *sweeperStub) SweepOnce(context.Context) (services.SweepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds++
	if s.failing {
		return services.SweepResult{}, errors.New("claim failed")
	}
	return services.SweepResult{Claimed: 2, Resolved: 1, Rescheduled: 1}, nil
}

func (s *sweeperStub) CountPending(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts++
	return 1, nil
}

func (s *sweeperStub) snapshot() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rounds, s.counts
}

func TestNewRunnerValidatesParams(t *testing.T) {
	_, err := mediasweep.NewRunner(mediasweep.RunnerParams{Interval: time.Second})
	require.Error(t, err)

	_, err = mediasweep.NewRunner(mediasweep.RunnerParams{Sweeper: &sweeperStub{}})
	require.Error(t, err)
}

func TestRunnerSweepsUntilCancelled(t *testing.T) {
	stub := &sweeperStub{}
	runner, err := mediasweep.NewRunner(mediasweep.RunnerParams{
		Sweeper:  stub,
		Interval: 10 * time.Millisecond,
		Logger:   log.NewStdLogger(io.Discard),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	require.Eventually(t, func() bool {
		rounds, counts := stub.snapshot()
		return rounds >= 3 && counts >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop in time")
	}
}

func TestRunnerKeepsGoingAfterFailedRound(t *testing.T) {
	stub := &sweeperStub{failing: true}
	runner, err := mediasweep.NewRunner(mediasweep.RunnerParams{
		Sweeper:  stub,
		Interval: 10 * time.Millisecond,
		Logger:   log.NewStdLogger(io.Discard),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = runner.Run(ctx) }()

	require.Eventually(t, func() bool {
		rounds, _ := stub.snapshot()
		return rounds >= 2
	}, 2*time.Second, 5*time.Millisecond)

	_, counts := stub.snapshot()
	require.Zero(t, counts, "pending count is skipped when a round fails")
}

func TestProvideRunnerNilService(t *testing.T) {
	require.Nil(t, mediasweep.ProvideRunner(nil, configloader.SweepConfig{Interval: time.Second}, log.NewStdLogger(io.Discard)))
}
