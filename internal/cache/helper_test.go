package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_MissFetchesAndStores(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetched := 0
	var got cachedUser
	err := Aside(ctx, UserKey(1), &got, UserTTL, func() error {
		fetched++
		got = cachedUser{ID: 1, Username: "ada"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, "ada", got.Username)
	assert.True(t, mr.Exists(UserKey(1)))

	// Second read hits the cache, fetch is not called again.
	var again cachedUser
	err = Aside(ctx, UserKey(1), &again, UserTTL, func() error {
		fetched++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
	assert.Equal(t, got, again)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	var dest cachedUser
	err := Aside(ctx, PostKey(7), &dest, PostTTL, func() error {
		return errors.New("db down")
	})
	assert.Error(t, err)
	assert.False(t, mr.Exists(PostKey(7)))
}

func TestInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedUser{ID: 3}, time.Minute))
	require.True(t, mr.Exists(UserKey(3)))

	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}

func TestAside_NilClientFallsThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest cachedUser
	err := Aside(ctx, UserKey(9), &dest, UserTTL, func() error {
		dest = cachedUser{ID: 9, Username: "nil-client"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "nil-client", dest.Username)
}
