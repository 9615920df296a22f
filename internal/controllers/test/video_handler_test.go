package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers"
	"github.com/bionicotaku/lingo-services-tube/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-tube/internal/models/vo"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleVideoVO(owner uuid.UUID) *vo.Video {
	return &vo.Video{
		VideoID:    uuid.New(),
		CreatorID:  owner,
		Title:      "Cats",
		FileURL:    "http://media.local/videos/a.mp4",
		CommentIDs: []uuid.UUID{},
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
}

func newHandlers(lifecycle *lifecycleServiceStub, query *queryServiceStub) (*controllers.LifecycleHandler, *controllers.VideoQueryHandler) {
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	return controllers.NewLifecycleHandler(lifecycle, base, controllers.UploadLimits{MaxBytes: 1 << 20}),
		controllers.NewVideoQueryHandler(query, base)
}

func multipartUpload(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("videoFile", "cat.mp4")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestVideoQueryHandler_ListHome(t *testing.T) {
	t.Parallel()
	owner := uuid.New()
	first, second := sampleVideoVO(owner), sampleVideoVO(owner)
	_, query := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{
		homeFn: func(context.Context) []*vo.Video { return []*vo.Video{first, second} },
	})

	rec := serve(newTestServer(query), httptest.NewRequest(http.MethodGet, "/v1/videos", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON[dto.VideoList](t, rec.Body)
	require.Len(t, body.Videos, 2)
	require.Equal(t, first.VideoID.String(), body.Videos[0].ID)
	require.Equal(t, second.VideoID.String(), body.Videos[1].ID)
}

func TestVideoQueryHandler_SearchPassesTerm(t *testing.T) {
	t.Parallel()
	var got string
	_, query := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{
		searchFn: func(_ context.Context, term string) []*vo.Video {
			got = term
			return []*vo.Video{}
		},
	})

	rec := serve(newTestServer(query), httptest.NewRequest(http.MethodGet, "/v1/search?term=100%25", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "100%", got)

	body := decodeJSON[dto.VideoList](t, rec.Body)
	require.NotNil(t, body.Videos)
	require.Empty(t, body.Videos)
}

func TestVideoQueryHandler_GetVideoNotFound(t *testing.T) {
	t.Parallel()
	_, query := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{
		getFn: func(context.Context, uuid.UUID) (*vo.VideoDetail, error) { return nil, services.ErrVideoNotFound },
	})

	rec := serve(newTestServer(query), httptest.NewRequest(http.MethodGet, "/v1/videos/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, services.ReasonVideoNotFound, decodeError(t, rec).Reason)
}

func TestVideoQueryHandler_GetVideoInvalidID(t *testing.T) {
	t.Parallel()
	_, query := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{})

	rec := serve(newTestServer(query), httptest.NewRequest(http.MethodGet, "/v1/videos/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVideoQueryHandler_GetVideoDetail(t *testing.T) {
	t.Parallel()
	video := sampleVideoVO(uuid.New())
	comment := &vo.Comment{CommentID: uuid.New(), CreatorID: uuid.New(), Text: "nice"}
	video.CommentIDs = []uuid.UUID{comment.CommentID}
	_, query := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{
		getFn: func(_ context.Context, id uuid.UUID) (*vo.VideoDetail, error) {
			require.Equal(t, video.VideoID, id)
			return &vo.VideoDetail{Video: *video, Comments: []*vo.Comment{comment}}, nil
		},
	})

	rec := serve(newTestServer(query), httptest.NewRequest(http.MethodGet, "/v1/videos/"+video.VideoID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[dto.VideoDetail](t, rec.Body)
	require.Equal(t, video.VideoID.String(), body.ID)
	require.Len(t, body.Comments, 1)
	require.Equal(t, "nice", body.Comments[0].Text)
}

func TestLifecycleHandler_CreateVideoRequiresCaller(t *testing.T) {
	t.Parallel()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{})

	body, contentType := multipartUpload(t, map[string]string{"title": "Cats"}, []byte("bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/videos", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, services.ReasonUnauthenticated, decodeError(t, rec).Reason)
}

func TestLifecycleHandler_CreateVideo(t *testing.T) {
	t.Parallel()
	owner := uuid.New()
	created := sampleVideoVO(owner)
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		createFn: func(_ context.Context, in services.CreateVideoInput) (*vo.Video, error) {
			require.Equal(t, owner, in.OwnerID)
			require.Equal(t, "Cats", in.Title)
			require.Equal(t, "fluffy", in.Description)
			require.Equal(t, "cat.mp4", in.Upload.Filename)
			require.Equal(t, "idem-9", in.IdempotencyKey)
			data, err := io.ReadAll(in.Upload.Body)
			require.NoError(t, err)
			require.Equal(t, "bytes", string(data))
			return created, nil
		},
	}, &queryServiceStub{})

	body, contentType := multipartUpload(t, map[string]string{"title": "Cats", "description": "fluffy"}, []byte("bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, owner))
	req.Header.Set("x-md-idempotency-key", "idem-9")

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeJSON[dto.Video](t, rec.Body)
	require.Equal(t, created.VideoID.String(), got.ID)
	require.Equal(t, created.FileURL, got.FileURL)
}

func TestLifecycleHandler_CreateVideoMissingFile(t *testing.T) {
	t.Parallel()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{}, &queryServiceStub{})

	body, contentType := multipartUpload(t, map[string]string{"title": "Cats"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, uuid.New()))

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLifecycleHandler_CreateVideoStorageFailure(t *testing.T) {
	t.Parallel()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		createFn: func(context.Context, services.CreateVideoInput) (*vo.Video, error) {
			return nil, services.ErrStorageWrite.WithCause(errors.New("disk full"))
		},
	}, &queryServiceStub{})

	body, contentType := multipartUpload(t, map[string]string{"title": "Cats"}, []byte("bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/videos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, uuid.New()))

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, services.ReasonStorageWriteFailed, decodeError(t, rec).Reason)
}

func TestLifecycleHandler_EditVideoForbidden(t *testing.T) {
	t.Parallel()
	caller := uuid.New()
	videoID := uuid.New()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		editFn: func(_ context.Context, in services.EditVideoInput) (*vo.Video, error) {
			require.Equal(t, videoID, in.VideoID)
			require.Equal(t, caller, in.CallerID)
			require.Equal(t, "Hacked", *in.Title)
			require.Nil(t, in.Description)
			return nil, services.ErrVideoForbidden
		},
	}, &queryServiceStub{})

	req := httptest.NewRequest(http.MethodPatch, "/v1/videos/"+videoID.String(), strings.NewReader(`{"title":"Hacked"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, caller))

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, services.ReasonVideoForbidden, decodeError(t, rec).Reason)
}

func TestLifecycleHandler_DeleteVideoMediaWarning(t *testing.T) {
	t.Parallel()
	videoID := uuid.New()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		deleteFn: func(_ context.Context, in services.DeleteVideoInput) (*services.DeleteVideoResult, error) {
			return &services.DeleteVideoResult{
				VideoID:         in.VideoID,
				MetadataDeleted: true,
				MediaWarning:    errors.New("bucket unavailable"),
			}, nil
		},
	}, &queryServiceStub{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/videos/"+videoID.String(), nil)
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, uuid.New()))

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON[dto.DeleteVideoResult](t, rec.Body)
	require.True(t, got.MetadataDeleted)
	require.False(t, got.MediaDeleted)
	require.NotEmpty(t, got.Warning)
}

func TestLifecycleHandler_RegisterViewIsPublic(t *testing.T) {
	t.Parallel()
	videoID := uuid.New()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		viewFn: func(_ context.Context, id uuid.UUID) (int64, error) {
			require.Equal(t, videoID, id)
			return 4, nil
		},
	}, &queryServiceStub{})

	rec := serve(newTestServer(lifecycle), httptest.NewRequest(http.MethodPost, "/v1/videos/"+videoID.String()+"/views", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON[dto.ViewCount](t, rec.Body)
	require.Equal(t, int64(4), got.Views)
}

func TestLifecycleHandler_AddComment(t *testing.T) {
	t.Parallel()
	caller := uuid.New()
	videoID := uuid.New()
	lifecycle, _ := newHandlers(&lifecycleServiceStub{
		commentFn: func(_ context.Context, in services.AddCommentInput) (*vo.Comment, error) {
			require.Equal(t, videoID, in.VideoID)
			require.Equal(t, caller, in.CallerID)
			require.Equal(t, "nice", in.Text)
			return &vo.Comment{CommentID: uuid.New(), CreatorID: caller, Text: in.Text}, nil
		},
	}, &queryServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/v1/videos/"+videoID.String()+"/comments", strings.NewReader(`{"text":"nice"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-apigateway-api-userinfo", userInfoHeader(t, caller))

	rec := serve(newTestServer(lifecycle), req)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeJSON[dto.Comment](t, rec.Body)
	require.Equal(t, "nice", got.Text)
	require.Equal(t, caller.String(), got.CreatorID)
}
