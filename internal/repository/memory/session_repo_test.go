package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestSessionRepo_ConsumeOnce(t *testing.T) {
	repo := NewGuestSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.SetGuestName(ctx, "s", "Zoe", time.Hour))

	name, err := repo.ConsumeGuestName(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "Zoe", name)

	name, err = repo.ConsumeGuestName(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGuestSessionRepo_Expiry(t *testing.T) {
	repo := NewGuestSessionRepo()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.SetGuestName(ctx, "s", "Old", time.Minute))
	now = now.Add(time.Minute)

	name, err := repo.ConsumeGuestName(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGuestSessionRepo_SweepsPeriodically(t *testing.T) {
	repo := NewGuestSessionRepo()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	// Arrange: первая запись запускает проход и фиксирует его время
	require.NoError(t, repo.SetGuestName(ctx, "short", "A", time.Second))
	now = now.Add(2 * time.Second)

	// Act: до истечения интервала просроченная запись остаётся в карте
	require.NoError(t, repo.SetGuestName(ctx, "b", "B", time.Hour))
	assert.Len(t, repo.entries, 2)

	now = now.Add(sweepInterval)
	require.NoError(t, repo.SetGuestName(ctx, "c", "C", time.Hour))

	// Assert
	assert.Len(t, repo.entries, 2)
	assert.NotContains(t, repo.entries, "short")
}

func TestGuestSessionRepo_ConcurrentConsume(t *testing.T) {
	repo := NewGuestSessionRepo()
	ctx := context.Background()
	require.NoError(t, repo.SetGuestName(ctx, "race", "Winner", 0))

	var wg sync.WaitGroup
	var mu sync.Mutex
	got := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, _ := repo.ConsumeGuestName(ctx, "race")
			if name != "" {
				mu.Lock()
				got++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, got, "Гостевое имя должно быть получено ровно одним вызовом")
}
