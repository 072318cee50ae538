package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	user := models.User{ID: 1, Username: "alice"}
	require.NoError(t, SetJSON(ctx, UserKey(1), user, UserTTL))

	var got models.User
	found, err := GetJSON(ctx, UserKey(1), &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", got.Username)

	found, err = GetJSON(ctx, UserKey(2), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *models.User) func() error {
		return func() error {
			calls++
			dest.ID = 1
			dest.Username = "alice"
			return nil
		}
	}

	var first models.User
	require.NoError(t, Aside(ctx, UserKey(1), &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "alice", first.Username)

	// Second read comes from the cache without touching the fetcher.
	var second models.User
	require.NoError(t, Aside(ctx, UserKey(1), &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "alice", second.Username)
}

func TestAsideFetchError(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	wantErr := errors.New("db down")
	var dest models.User
	err := Aside(ctx, UserKey(1), &dest, time.Minute, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	// Nothing must be cached after a failed fetch.
	found, err := GetJSON(ctx, UserKey(1), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(9), models.Post{ID: 9}, PostTTL))
	InvalidatePost(ctx, 9)

	var got models.Post
	found, err := GetJSON(ctx, PostKey(9), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientFailsOpen(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest models.User
	found, err := GetJSON(ctx, UserKey(1), &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, UserKey(1), models.User{ID: 1}, time.Minute))

	calls := 0
	require.NoError(t, Aside(ctx, UserKey(1), &dest, time.Minute, func() error {
		calls++
		dest.Username = "direct"
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "direct", dest.Username)
}
