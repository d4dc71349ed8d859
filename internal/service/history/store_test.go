package history

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"zentube/internal/domain"
	"zentube/internal/repository"
	"zentube/pkg/database"
	"zentube/pkg/logger"
	"zentube/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisHistory(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.NewClient("redis://"+mr.Addr(), "production", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewStore(repository.NewRedisStore(client), client.KeyBuilder, DefaultLimit, logger.NewNop())
}

func setupSQLiteHistory(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(repository.NewSQLiteStore(db), redis.NewKeyBuilder("production"), DefaultLimit, logger.NewNop())
}

func video(id string) domain.VideoItem {
	return domain.VideoItem{ID: id, Title: "Video " + id, ChannelTitle: "Channel"}
}

func ids(entries []domain.HistoryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestStore_AllEmpty(t *testing.T) {
	_, store := setupRedisHistory(t)

	entries, err := store.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestStore_RecordSameVideoTwice(t *testing.T) {
	_, store := setupRedisHistory(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, video("x")))
	require.NoError(t, store.Record(ctx, video("x")))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].ID)
}

func TestStore_RecordMovesToFront(t *testing.T) {
	store := setupSQLiteHistory(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Record(ctx, video(id)))
	}
	require.NoError(t, store.Record(ctx, video("a")))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids(entries))
}

func TestStore_CapsAtLimit(t *testing.T) {
	_, store := setupRedisHistory(t)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		require.NoError(t, store.Record(ctx, video(fmt.Sprintf("v%02d", i))))
	}

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	assert.Equal(t, "v59", entries[0].ID)
	assert.Equal(t, "v10", entries[49].ID)
}

func TestStore_KeepsSnapshotAndTimestamp(t *testing.T) {
	_, store := setupRedisHistory(t)
	ctx := context.Background()
	watched := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return watched }

	item := video("x")
	item.Statistics = &domain.Statistics{ViewCount: 1200}
	require.NoError(t, store.Record(ctx, item))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Video x", entries[0].Title)
	assert.Equal(t, uint64(1200), entries[0].Statistics.ViewCount)
	assert.True(t, watched.Equal(entries[0].WatchedAt))
}

func TestStore_CorruptedValueTreatedAsEmpty(t *testing.T) {
	mr, store := setupRedisHistory(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("prod:watch_history", "{not json"))

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, store.Record(ctx, video("x")))
	entries, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids(entries))
}

func TestStore_Clear(t *testing.T) {
	mr, store := setupRedisHistory(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, video("x")))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("prod:watch_history"))
	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_RejectsEmptyID(t *testing.T) {
	_, store := setupRedisHistory(t)
	assert.Error(t, store.Record(context.Background(), domain.VideoItem{}))
}

func TestStore_ConcurrentRecordsAreNotLost(t *testing.T) {
	_, store := setupRedisHistory(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Record(ctx, video(fmt.Sprintf("c%d", i))))
		}(i)
	}
	wg.Wait()

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
