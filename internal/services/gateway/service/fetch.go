package service

import (
	"context"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"golang.org/x/sync/errgroup"
)

// NameResolver builds the per-request name snapshot.
type NameResolver interface {
	Resolve(ctx context.Context) (names.Names, error)
}

// fetchWithNames runs the name resolution and fetch concurrently and returns
// only once both have finished. Either failure fails the whole call.
func fetchWithNames[T any](ctx context.Context, resolver NameResolver, fetch func(context.Context) (T, error)) (T, names.Names, error) {
	var (
		result   T
		snapshot names.Names
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = resolver.Resolve(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		result, err = fetch(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		var zero T
		return zero, names.Names{}, err
	}
	return result, snapshot, nil
}
