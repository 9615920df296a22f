package repositories_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/models/po"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestVideoRepositoryIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	logger := log.NewStdLogger(io.Discard)

	repo := repositories.NewVideoRepository(pool, logger)
	comments := repositories.NewCommentRepository(pool, logger)
	userVideos := repositories.NewUserVideosRepository(pool, logger)
	txMgr := newTxManager(t, pool)

	owner := uuid.New()
	create := func(t *testing.T, title string) *po.Video {
		t.Helper()
		var video *po.Video
		err := txMgr.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
			created, err := repo.Create(txCtx, sess, repositories.CreateVideoInput{
				CreatorID: owner,
				Title:     title,
				FileURL:   "http://media.local/videos/" + uuid.NewString() + ".mp4",
			})
			if err != nil {
				return err
			}
			video = created
			return userVideos.Add(txCtx, sess, owner, created.VideoID)
		})
		require.NoError(t, err)
		return video
	}

	dogs := create(t, "Dogs")
	cats := create(t, "Cats")
	catsPlease := create(t, "cats please")
	percent := create(t, "100% fun")
	underscore := create(t, "snake_case")
	regexy := create(t, "wild.*card")

	t.Run("CreateDefaults", func(t *testing.T) {
		got, err := repo.Get(ctx, nil, cats.VideoID)
		require.NoError(t, err)
		require.Equal(t, cats.FileURL, got.FileURL)
		require.EqualValues(t, 0, got.Views)
		require.Empty(t, got.CommentIDs)
		require.True(t, got.IsOwnedBy(owner))
		require.Equal(t, 7, int(got.VideoID.Version()))
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.Get(ctx, nil, uuid.New())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("ListRecentNewestFirst", func(t *testing.T) {
		all, err := repo.ListRecent(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 6)
		expected := []uuid.UUID{regexy.VideoID, underscore.VideoID, percent.VideoID, catsPlease.VideoID, cats.VideoID, dogs.VideoID}
		for i, id := range expected {
			require.Equal(t, id, all[i].VideoID, "position %d", i)
		}
	})

	t.Run("SearchCaseInsensitive", func(t *testing.T) {
		found, err := repo.SearchByTitle(ctx, nil, "CAT")
		require.NoError(t, err)
		require.ElementsMatch(t, []uuid.UUID{cats.VideoID, catsPlease.VideoID}, videoIDs(found))
	})

	t.Run("SearchEmptyMatchesAll", func(t *testing.T) {
		found, err := repo.SearchByTitle(ctx, nil, "")
		require.NoError(t, err)
		require.Len(t, found, 6)
	})

	t.Run("SearchLiteralSpecialCharacters", func(t *testing.T) {
		cases := map[string][]uuid.UUID{
			"%":  {percent.VideoID},
			"_":  {underscore.VideoID},
			".*": {regexy.VideoID},
			"[":  nil,
		}
		for term, want := range cases {
			found, err := repo.SearchByTitle(ctx, nil, term)
			require.NoError(t, err, term)
			require.ElementsMatch(t, want, videoIDs(found), "term %q", term)
		}
	})

	t.Run("UpdateFieldsTouchesOnlyNamed", func(t *testing.T) {
		updated, err := repo.UpdateFields(ctx, nil, repositories.UpdateVideoFieldsInput{
			VideoID:     dogs.VideoID,
			Description: stringPtr("good boys"),
		})
		require.NoError(t, err)
		require.Equal(t, "Dogs", updated.Title)
		require.Equal(t, "good boys", updated.Description)
		require.Equal(t, dogs.FileURL, updated.FileURL)

		_, err = repo.UpdateFields(ctx, nil, repositories.UpdateVideoFieldsInput{VideoID: uuid.New(), Title: stringPtr("x")})
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("ConcurrentIncrementViews", func(t *testing.T) {
		for _, n := range []int{1, 10, 100} {
			video := create(t, fmt.Sprintf("views-%d", n))
			var wg sync.WaitGroup
			errs := make(chan error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := repo.IncrementViews(ctx, nil, video.VideoID)
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			got, err := repo.Get(ctx, nil, video.VideoID)
			require.NoError(t, err)
			require.EqualValues(t, n, got.Views, "n=%d", n)
		}

		_, err := repo.IncrementViews(ctx, nil, uuid.New())
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)
	})

	t.Run("ConcurrentAppendComment", func(t *testing.T) {
		const n = 20
		video := create(t, "comments")
		var wg sync.WaitGroup
		ids := make(chan uuid.UUID, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				comment, err := comments.Create(ctx, nil, owner, fmt.Sprintf("comment %d", i))
				if err != nil {
					t.Errorf("create comment: %v", err)
					return
				}
				if _, err := repo.AppendComment(ctx, nil, video.VideoID, comment.CommentID); err != nil {
					t.Errorf("append comment: %v", err)
					return
				}
				ids <- comment.CommentID
			}(i)
		}
		wg.Wait()
		close(ids)

		var appended []uuid.UUID
		for id := range ids {
			appended = append(appended, id)
		}

		got, err := repo.Get(ctx, nil, video.VideoID)
		require.NoError(t, err)
		require.ElementsMatch(t, appended, got.CommentIDs)

		loaded, err := comments.ListByIDs(ctx, nil, got.CommentIDs)
		require.NoError(t, err)
		require.Len(t, loaded, n)
	})

	t.Run("ListByCreator", func(t *testing.T) {
		mine, err := repo.ListByCreator(ctx, nil, owner)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(mine), 6)

		none, err := repo.ListByCreator(ctx, nil, uuid.New())
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		video := create(t, "to delete")

		err := txMgr.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
			removed, err := repo.Delete(txCtx, sess, video.VideoID)
			if err != nil {
				return err
			}
			require.True(t, removed)
			return userVideos.Remove(txCtx, sess, owner, video.VideoID)
		})
		require.NoError(t, err)

		_, err = repo.Get(ctx, nil, video.VideoID)
		require.ErrorIs(t, err, repositories.ErrVideoNotFound)

		removed, err := repo.Delete(ctx, nil, video.VideoID)
		require.NoError(t, err)
		require.False(t, removed)
		require.NoError(t, userVideos.Remove(ctx, nil, owner, video.VideoID))
	})
}

func TestMediaOrphanRepositoryIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newPool(ctx, t)
	repo := repositories.NewMediaOrphanRepository(pool, log.NewStdLogger(io.Discard))

	videoID := uuid.New()
	first, err := repo.Record(ctx, nil, repositories.RecordMediaOrphanInput{
		Locator:   "http://media.local/videos/a.mp4",
		VideoID:   &videoID,
		Reason:    po.OrphanReasonDeleteFailed,
		LastError: stringPtr("timeout"),
	})
	require.NoError(t, err)
	require.EqualValues(t, 0, first.Attempts)

	_, err = repo.Record(ctx, nil, repositories.RecordMediaOrphanInput{
		Locator: "http://media.local/videos/b.mp4",
		Reason:  po.OrphanReasonCreateFailed,
	})
	require.NoError(t, err)

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	now := time.Now().UTC().Add(time.Second)
	claimed, err := repo.Claim(ctx, now, now.Add(time.Minute), 3, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	again, err := repo.Claim(ctx, now, now.Add(time.Minute), 3, 10)
	require.NoError(t, err)
	require.Empty(t, again, "leased rows must not be claimed twice")

	for _, orphan := range claimed {
		if orphan.Reason == po.OrphanReasonDeleteFailed {
			require.NoError(t, repo.Resolve(ctx, orphan.OrphanID, now))
			continue
		}
		require.NoError(t, repo.Reschedule(ctx, orphan.OrphanID, now, "still failing"))
	}

	count, err = repo.CountPending(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	retry, err := repo.Claim(ctx, now.Add(time.Second), now.Add(time.Minute), 3, 10)
	require.NoError(t, err)
	require.Len(t, retry, 1)
	require.EqualValues(t, 1, retry[0].Attempts)
	require.NotNil(t, retry[0].LastError)
	require.Equal(t, "still failing", *retry[0].LastError)

	exhausted, err := repo.Claim(ctx, now.Add(2*time.Minute), now.Add(3*time.Minute), 1, 10)
	require.NoError(t, err)
	require.Empty(t, exhausted, "rows past max attempts are skipped")
}

func videoIDs(videos []*po.Video) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}
	return ids
}
