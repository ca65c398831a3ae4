package pages

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchAll(t *testing.T) {
	t.Run("runs every fetch and succeeds when all do", func(t *testing.T) {
		var calls int32
		fetch := func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}

		err := fetchAll(context.Background(), fetch, fetch, fetch)

		assert.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("any failure fails the whole load", func(t *testing.T) {
		boom := errors.New("connection refused")

		err := fetchAll(context.Background(),
			func(ctx context.Context) error { return nil },
			func(ctx context.Context) error { return boom },
			func(ctx context.Context) error { return nil },
		)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("waits for every fetch even when one fails", func(t *testing.T) {
		var calls int32
		count := func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}

		_ = fetchAll(context.Background(),
			func(ctx context.Context) error { return errors.New("boom") },
			count, count,
		)

		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("reports a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fetchAll(ctx, func(ctx context.Context) error { return nil })

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadGuard(t *testing.T) {
	t.Run("the latest token is current", func(t *testing.T) {
		var g loadGuard
		token := g.begin()
		assert.True(t, g.current(token))
	})

	t.Run("a newer load supersedes an older token", func(t *testing.T) {
		var g loadGuard
		old := g.begin()
		fresh := g.begin()

		assert.False(t, g.current(old))
		assert.True(t, g.current(fresh))
	})
}
