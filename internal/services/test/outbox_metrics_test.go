package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// 使用全局 MeterProvider，不能并行。
func installManualReader(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(previous) })
	return reader
}

func sumPoints(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			return sum.DataPoints
		}
	}
	return nil
}

func attrValue(set attribute.Set, key string) string {
	v, ok := set.Value(attribute.Key(key))
	if !ok {
		return ""
	}
	return v.Emit()
}

func TestOutboxMetricsLabelEnqueueByOperation(t *testing.T) {
	reader := installManualReader(t)
	svc, m := newLifecycleService(t)
	owner := uuid.New()
	video := sampleVideo(owner)
	updated := *video
	updated.Title = "Dogs"

	m.videos.EXPECT().Get(gomock.Any(), gomock.Any(), video.VideoID).Return(video, nil)
	m.videos.EXPECT().UpdateFields(gomock.Any(), gomock.Any(), gomock.Any()).Return(&updated, nil)
	m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.EditVideo(context.Background(), services.EditVideoInput{
		VideoID:        video.VideoID,
		CallerID:       owner,
		Title:          ptrString("Dogs"),
		IdempotencyKey: "edit-1",
	})
	require.NoError(t, err)

	points := sumPoints(t, reader, "tube_outbox_enqueue_total")
	require.Len(t, points, 1)
	require.Equal(t, int64(1), points[0].Value)
	require.Equal(t, "edit_video", attrValue(points[0].Attributes, "operation"))
	require.Equal(t, "tube.video.updated", attrValue(points[0].Attributes, "event_type"))
	require.Equal(t, "lifecycle", attrValue(points[0].Attributes, "component"))
	require.Equal(t, "true", attrValue(points[0].Attributes, "idempotent"))
}

func TestOutboxMetricsClassifyStoreFailures(t *testing.T) {
	reader := installManualReader(t)
	svc, m := newLifecycleService(t)
	owner := uuid.New()
	video := sampleVideo(owner)

	m.videos.EXPECT().Get(gomock.Any(), gomock.Nil(), video.VideoID).Return(video, nil)
	m.store.EXPECT().Delete(gomock.Any(), testLocator).Return(nil)
	m.videos.EXPECT().Delete(gomock.Any(), gomock.Any(), video.VideoID).Return(true, nil)
	m.userVideos.EXPECT().Remove(gomock.Any(), gomock.Any(), owner, video.VideoID).Return(nil)
	m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

	_, err := svc.DeleteVideo(context.Background(), services.DeleteVideoInput{VideoID: video.VideoID, CallerID: owner})
	require.Error(t, err)

	require.Empty(t, sumPoints(t, reader, "tube_outbox_enqueue_total"))
	points := sumPoints(t, reader, "tube_outbox_enqueue_failures_total")
	require.Len(t, points, 1)
	attrs := points[0].Attributes
	require.Equal(t, "delete_video", attrValue(attrs, "operation"))
	require.Equal(t, "store", attrValue(attrs, "stage"))
	require.Equal(t, "timeout", attrValue(attrs, "error_kind"))
	require.Equal(t, "false", attrValue(attrs, "idempotent"))
}

func TestOutboxMetricsAddCommentFailureKind(t *testing.T) {
	reader := installManualReader(t)
	svc, m := newLifecycleService(t)
	videoID := uuid.New()
	caller := uuid.New()

	m.videos.EXPECT().Get(gomock.Any(), gomock.Any(), videoID).Return(sampleVideo(uuid.New()), nil)
	m.comments.EXPECT().Create(gomock.Any(), gomock.Any(), caller, "hi").Return(&po.Comment{
		CommentID: uuid.New(),
		CreatorID: caller,
		Text:      "hi",
		CreatedAt: time.Now().UTC(),
	}, nil)
	m.videos.EXPECT().AppendComment(gomock.Any(), gomock.Any(), videoID, gomock.Any()).Return(int32(1), nil)
	m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

	_, err := svc.AddComment(context.Background(), services.AddCommentInput{VideoID: videoID, CallerID: caller, Text: "hi"})
	require.Error(t, err)

	points := sumPoints(t, reader, "tube_outbox_enqueue_failures_total")
	require.Len(t, points, 1)
	require.Equal(t, "add_comment", attrValue(points[0].Attributes, "operation"))
	require.Equal(t, "internal", attrValue(points[0].Attributes, "error_kind"))
}
