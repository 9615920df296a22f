package outbox_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/migrator"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	outboxpublisher "github.com/bionicotaku/lingo-utils/outbox/publisher"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	metricapi "go.opentelemetry.io/otel/metric"
)

const (
	testProjectID = "test-project"
	testTopicID   = "tube-video-events"
)

var defaultOutboxConfig = outboxcfg.Config{Schema: "tube"}

func newMigratedPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "tube",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/tube?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip outbox integration tests: cannot start postgres container: %v", err)
	}
	t.Cleanup(func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/tube?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = migrator.Run(ctx, pool, migrator.Options{}, log.NewStdLogger(io.Discard))
	require.NoError(t, err)
	return pool
}

func newTestPublisher(ctx context.Context, t *testing.T, server *pstest.Server) gcpubsub.Publisher {
	t.Helper()

	cfg := gcpubsub.Config{
		ProjectID:        testProjectID,
		TopicID:          testTopicID,
		EnableLogging:    boolPtr(false),
		EnableMetrics:    boolPtr(true),
		MeterName:        "lingo-services-tube.gcpubsub.test",
		EmulatorEndpoint: server.Addr,
	}

	component, cleanup, err := gcpubsub.NewComponent(ctx, cfg, gcpubsub.Dependencies{
		Logger: log.NewStdLogger(io.Discard),
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return gcpubsub.ProvidePublisher(component)
}

func newPublisherRunner(t *testing.T, repo *repositories.OutboxRepository, publisher gcpubsub.Publisher, meter metricapi.Meter, cfg outboxcfg.PublisherConfig) *outboxpublisher.Runner {
	t.Helper()

	if cfg.BatchSize == 0 {
		cfg.BatchSize = 1
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	cfg.LoggingEnabled = boolPtr(false)
	cfg.MetricsEnabled = boolPtr(true)

	runner, err := outboxpublisher.NewRunner(outboxpublisher.RunnerParams{
		Store:     repo.Shared(),
		Publisher: publisher,
		Config:    cfg,
		Logger:    log.NewStdLogger(io.Discard),
		Meter:     meter,
	})
	require.NoError(t, err)
	return runner
}

// runUntilCancelled 在后台运行 runner，测试结束时取消并等待退出。
func runUntilCancelled(t *testing.T, ctx context.Context, runner *outboxpublisher.Runner) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			if err != nil && !isCanceled(err) {
				t.Errorf("runner stopped with error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("runner did not stop in time")
		}
	})
}

func boolPtr(v bool) *bool {
	return &v
}
