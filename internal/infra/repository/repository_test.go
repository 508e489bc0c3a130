//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"folio-api/internal/domain/booking"
	"folio-api/internal/domain/diary"
	"folio-api/internal/domain/schedule"
	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository"
	"folio-api/internal/pkg/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, name string, created time.Time) *booking.Request {
	t.Helper()
	r, err := booking.NewRequest(
		name, "@"+name, "Telegram",
		"Hangout", "", "",
		"Berlin",
		schedule.Window{
			StartDate: timeutil.MustParseLocalDate("2025-06-01"),
			StartTime: timeutil.MustParseClockTime("09:00"),
			EndTime:   timeutil.MustParseClockTime("10:00"),
		},
		created,
	)
	require.NoError(t, err)
	return r
}

func TestBusyRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBusyRepository(kvstore.NewMemoryStore())

	t.Run("empty store loads an empty map", func(t *testing.T) {
		m, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("save and reload", func(t *testing.T) {
		want := schedule.BusyMap{"2025-06-01": {"09:00", "10:00"}}
		require.NoError(t, repo.Save(ctx, want))
		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("corrupt record reads as empty", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, kvstore.KeyBusyData, []byte("{broken")))
		m, err := repository.NewBusyRepository(store).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})
}

func TestRequestsRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRequestsRepository(kvstore.NewMemoryStore())
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, newRequest(t, "first", base)))
	require.NoError(t, repo.Append(ctx, newRequest(t, "second", base.Add(time.Hour))))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Name(), "newest first")
	assert.Equal(t, "first", got[1].Name())
	assert.Equal(t, base, got[1].CreatedAt())
	assert.Equal(t, "Jun 1 • 09:00 - 10:00 (1h)", got[0].TimeLabel())
}

func TestUserActionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserActionRepository(kvstore.NewMemoryStore())

	t.Run("like is idempotent per client", func(t *testing.T) {
		added, err := repo.Like(ctx, "c1", "d-1")
		require.NoError(t, err)
		assert.True(t, added)

		added, err = repo.Like(ctx, "c1", "d-1")
		require.NoError(t, err)
		assert.False(t, added)

		// A different client can still like the same item.
		added, err = repo.Like(ctx, "c2", "d-1")
		require.NoError(t, err)
		assert.True(t, added)

		assert.Equal(t, []string{"d-1"}, repo.Load(ctx, "c1").LikedItems)
	})

	t.Run("last request time round-trips and preserves likes", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, repo.SetLastRequestTime(ctx, "c1", at))
		assert.Equal(t, at, repo.LastRequestTime(ctx, "c1"))
		assert.Equal(t, []string{"d-1"}, repo.Load(ctx, "c1").LikedItems)
	})

	t.Run("never-submitted client has zero time", func(t *testing.T) {
		assert.True(t, repo.LastRequestTime(ctx, "fresh").IsZero())
	})
}

func TestDiaryRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDiaryRepository(kvstore.NewMemoryStore())
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	older, err := diary.NewEntry("first post", diary.MediaNone, "", now)
	require.NoError(t, err)
	newer, err := diary.NewEntry("second post", diary.MediaImage, "https://img/1.jpg", now.Add(24*time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, older))
	require.NoError(t, repo.Append(ctx, newer))

	t.Run("list newest first", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "second post", got[0].Content())
	})

	t.Run("like bumps the counter", func(t *testing.T) {
		require.NoError(t, repo.AddLike(ctx, older.ID().String()))
		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, got[1].Likes())
	})

	t.Run("like of unknown entry is NOT_FOUND", func(t *testing.T) {
		err := repo.AddLike(ctx, "missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
