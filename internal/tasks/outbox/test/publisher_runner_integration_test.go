package outbox_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"cloud.google.com/go/pubsub/pstest"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	outboxevents "github.com/bionicotaku/lingo-services-tube/internal/models/outbox_events"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	outboxtasks "github.com/bionicotaku/lingo-services-tube/internal/tasks/outbox"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	outboxcfg "github.com/bionicotaku/lingo-utils/outbox/config"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func createTopic(ctx context.Context, t *testing.T, server *pstest.Server) string {
	t.Helper()
	topicName := fmt.Sprintf("projects/%s/topics/%s", testProjectID, testTopicID)
	_, err := server.GServer.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	require.NoError(t, err)
	return topicName
}

func TestProvideRunnerSkipsWithoutTopic(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	repo := &repositories.OutboxRepository{}

	runner := outboxtasks.ProvideRunner(repo, nil, gcpubsub.Config{}, defaultOutboxConfig, logger)
	require.Nil(t, runner)

	require.Nil(t, outboxtasks.ProvideRunner(nil, nil, gcpubsub.Config{TopicID: testTopicID}, defaultOutboxConfig, logger))
}

func TestPublisherRunner_SuccessfulPublish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newMigratedPool(ctx, t)
	repo := repositories.NewOutboxRepository(pool, log.NewStdLogger(io.Discard), defaultOutboxConfig)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })
	topicName := createTopic(ctx, t, server)
	publisher := newTestPublisher(ctx, t, server)

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	runner := newPublisherRunner(t, repo, publisher, provider.Meter("lingo-services-tube.outbox.test"), outboxcfg.PublisherConfig{
		BatchSize:      4,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    3,
		PublishTimeout: time.Second,
		Workers:        2,
		LockTTL:        time.Second,
	})

	eventID := uuid.New()
	aggregateID := uuid.New()
	require.NoError(t, repo.Enqueue(ctx, nil, repositories.OutboxMessage{
		EventID:       eventID,
		AggregateType: outboxevents.AggregateTypeVideo,
		AggregateID:   aggregateID,
		EventType:     "tube.video.created",
		Payload:       []byte(`{"video_id":"` + aggregateID.String() + `"}`),
		Headers:       map[string]string{"schema_version": "v1"},
		AvailableAt:   time.Now().UTC(),
	}))

	runUntilCancelled(t, ctx, runner)

	require.Eventually(t, func() bool {
		var publishedAt pgtype.Timestamptz
		var attempts int32
		queryErr := pool.QueryRow(ctx, `
			SELECT published_at, delivery_attempts
			FROM tube.outbox_events
			WHERE event_id = $1`, eventID).Scan(&publishedAt, &attempts)
		return queryErr == nil && publishedAt.Valid && attempts == 1
	}, 5*time.Second, 50*time.Millisecond)

	msgs := server.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, topicName, msgs[0].Topic)
}

func TestPublisherRunner_RecoveryAfterTopicCreated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newMigratedPool(ctx, t)
	repo := repositories.NewOutboxRepository(pool, log.NewStdLogger(io.Discard), defaultOutboxConfig)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })
	publisher := newTestPublisher(ctx, t, server)

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	runner := newPublisherRunner(t, repo, publisher, provider.Meter("lingo-services-tube.outbox.test"), outboxcfg.PublisherConfig{
		BatchSize:      2,
		TickInterval:   50 * time.Millisecond,
		InitialBackoff: 25 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: 150 * time.Millisecond,
		Workers:        1,
		LockTTL:        2 * time.Second,
	})

	eventID := uuid.New()
	require.NoError(t, repo.Enqueue(ctx, nil, repositories.OutboxMessage{
		EventID:       eventID,
		AggregateType: outboxevents.AggregateTypeVideo,
		AggregateID:   uuid.New(),
		EventType:     "tube.video.updated",
		Payload:       []byte(`{}`),
		AvailableAt:   time.Now().UTC(),
	}))

	runUntilCancelled(t, ctx, runner)

	// topic 不存在时至少失败一次
	require.Eventually(t, func() bool {
		var attempts int32
		queryErr := pool.QueryRow(ctx, `
			SELECT delivery_attempts FROM tube.outbox_events WHERE event_id = $1`, eventID).Scan(&attempts)
		return queryErr == nil && attempts >= 1
	}, 3*time.Second, 50*time.Millisecond)

	var publishedAt pgtype.Timestamptz
	require.NoError(t, pool.QueryRow(ctx, `
		SELECT published_at FROM tube.outbox_events WHERE event_id = $1`, eventID).Scan(&publishedAt))
	require.False(t, publishedAt.Valid, "event should not be published without topic")

	createTopic(ctx, t, server)

	require.Eventually(t, func() bool {
		var published pgtype.Timestamptz
		queryErr := pool.QueryRow(ctx, `
			SELECT published_at FROM tube.outbox_events WHERE event_id = $1`, eventID).Scan(&published)
		return queryErr == nil && published.Valid
	}, 6*time.Second, 100*time.Millisecond)
}

func TestPublisherRunner_PublishesLifecycleEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newMigratedPool(ctx, t)
	logger := log.NewStdLogger(io.Discard)

	txMgr, err := txmanager.NewManager(pool, txmanager.Config{}, txmanager.Dependencies{Logger: logger})
	require.NoError(t, err)
	store, err := mediastore.NewLocalStore(mediastore.Config{
		LocalRoot:     t.TempDir(),
		PublicBaseURL: "http://localhost:8080/media",
	}, logger)
	require.NoError(t, err)

	outboxRepo := repositories.NewOutboxRepository(pool, logger, defaultOutboxConfig)
	lifecycle := services.NewVideoLifecycleService(
		repositories.NewVideoRepository(pool, logger),
		repositories.NewCommentRepository(pool, logger),
		repositories.NewUserVideosRepository(pool, logger),
		repositories.NewMediaOrphanRepository(pool, logger),
		outboxRepo,
		store,
		txMgr,
		logger,
	)

	owner, viewer := uuid.New(), uuid.New()
	created, err := lifecycle.CreateVideo(ctx, services.CreateVideoInput{
		Upload:         mediastore.Upload{Body: bytes.NewReader([]byte("frames")), Size: 6, Filename: "a.mp4"},
		Title:          "Sunrise",
		OwnerID:        owner,
		IdempotencyKey: "create-1",
	})
	require.NoError(t, err)
	_, err = lifecycle.AddComment(ctx, services.AddCommentInput{VideoID: created.VideoID, CallerID: viewer, Text: "wow"})
	require.NoError(t, err)
	_, err = lifecycle.DeleteVideo(ctx, services.DeleteVideoInput{VideoID: created.VideoID, CallerID: owner})
	require.NoError(t, err)

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })
	createTopic(ctx, t, server)
	publisher := newTestPublisher(ctx, t, server)

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	runner := newPublisherRunner(t, outboxRepo, publisher, provider.Meter("lingo-services-tube.outbox.test"), outboxcfg.PublisherConfig{
		BatchSize:      8,
		TickInterval:   20 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     200 * time.Millisecond,
		MaxAttempts:    5,
		PublishTimeout: 500 * time.Millisecond,
		Workers:        1,
		LockTTL:        time.Second,
	})
	runUntilCancelled(t, ctx, runner)

	require.Eventually(t, func() bool {
		return len(server.Messages()) == 3
	}, 6*time.Second, 50*time.Millisecond)

	seen := map[string]outboxevents.Envelope{}
	for _, msg := range server.Messages() {
		var env outboxevents.Envelope
		require.NoError(t, json.Unmarshal(msg.Data, &env))
		require.Equal(t, created.VideoID.String(), env.AggregateID)
		require.Equal(t, env.EventType, msg.Attributes["event_type"])
		require.Equal(t, outboxevents.ContentTypeJSON, msg.Attributes["content_type"])
		seen[env.EventType] = env
		require.Equal(t, created.VideoID.String(), msg.Attributes[outboxevents.AttrVideoID])
		if env.EventType == "tube.video.created" {
			require.Equal(t, "create-1", msg.Attributes[outboxevents.AttrIdempotencyKey])
		}
		if env.EventType == "tube.video.deleted" {
			require.Equal(t, "true", msg.Attributes[outboxevents.AttrMediaDeleted])
		}
	}
	require.Contains(t, seen, "tube.video.created")
	require.Contains(t, seen, "tube.video.commented")
	require.Contains(t, seen, "tube.video.deleted")
	require.JSONEq(t, `true`, string(mustField(t, seen["tube.video.deleted"].Data, "media_deleted")))

	pending, err := outboxRepo.CountPending(ctx)
	require.NoError(t, err)
	require.Zero(t, pending)
}

func mustField(t *testing.T, data json.RawMessage, field string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	value, ok := fields[field]
	require.Truef(t, ok, "field %s missing in %s", field, string(data))
	return value
}
