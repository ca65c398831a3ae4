package pages

import (
	"context"
	"errors"
	"sync"
)

// ErrStale is returned by a page load whose results were discarded because a
// newer load began (or the context was cancelled) before it finished. The
// caller treats it as a no-op, not a failure.
var ErrStale = errors.New("load superseded")

// fetchAll runs the page's collection fetches concurrently and waits for all
// of them. Any failure fails the whole load; the caller discards every
// partial result and retries with a full reload.
func fetchAll(ctx context.Context, fetches ...func(context.Context) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) error) {
			defer wg.Done()
			errs[i] = fetch(ctx)
		}(i, fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return ctx.Err()
}

// loadGuard hands out generation tokens so that a response arriving after
// the page has moved on is discarded rather than applied.
type loadGuard struct {
	generation uint64
}

func (g *loadGuard) begin() uint64 {
	g.generation++
	return g.generation
}

func (g *loadGuard) current(token uint64) bool {
	return token == g.generation
}
