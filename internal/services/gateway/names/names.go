// Package names resolves offer and publisher display names for enrichment.
package names

import (
	"context"
	"fmt"
	"maps"

	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"golang.org/x/sync/errgroup"
)

// OfferFallback labels offer ids that have no mapped name, including the
// unrestricted id 0.
const OfferFallback = filter.StatusAll

// Map is a read-only id to display-name snapshot.
type Map struct {
	names map[int64]string
}

// NewMap snapshots src; later changes to src are not observed.
func NewMap(src map[int64]string) Map {
	return Map{names: maps.Clone(src)}
}

// Lookup returns the name mapped to id.
func (m Map) Lookup(id int64) (string, bool) {
	name, ok := m.names[id]
	return name, ok
}

// Len returns the number of mapped ids.
func (m Map) Len() int {
	return len(m.names)
}

// Names holds the per-request offer and publisher snapshots.
type Names struct {
	Offers     Map
	Publishers Map
}

// OfferName returns the offer's display name or OfferFallback.
func (n Names) OfferName(id int64) string {
	if name, ok := n.Offers.Lookup(id); ok {
		return name
	}
	return OfferFallback
}

// PublisherName returns the publisher's display name; ok is false when the
// id is not mapped.
func (n Names) PublisherName(id int64) (string, bool) {
	return n.Publishers.Lookup(id)
}

// OfferSource lists offer names from the offer lookup service.
type OfferSource interface {
	OfferNames(ctx context.Context) (map[int64]string, error)
}

// PublisherSource lists publisher names from the user lookup service.
type PublisherSource interface {
	PublisherNames(ctx context.Context) (map[int64]string, error)
}

// Resolver builds a fresh Names snapshot for each request.
type Resolver struct {
	offers     OfferSource
	publishers PublisherSource
}

// NewResolver creates a resolver over the two lookup services.
func NewResolver(offers OfferSource, publishers PublisherSource) *Resolver {
	return &Resolver{offers: offers, publishers: publishers}
}

// Resolve fetches both maps concurrently. Any lookup failure fails the
// whole resolution; no partial snapshot is returned.
func (r *Resolver) Resolve(ctx context.Context) (Names, error) {
	if r == nil || r.offers == nil || r.publishers == nil {
		return Names{}, fmt.Errorf("name resolver is not configured")
	}

	var offers, publishers map[int64]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		offers, err = r.offers.OfferNames(gctx)
		if err != nil {
			return fmt.Errorf("resolve offer names: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		publishers, err = r.publishers.PublisherNames(gctx)
		if err != nil {
			return fmt.Errorf("resolve publisher names: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Names{}, err
	}

	return Names{
		Offers:     NewMap(offers),
		Publishers: NewMap(publishers),
	}, nil
}
