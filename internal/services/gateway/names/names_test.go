package names

import (
	"context"
	"errors"
	"testing"
)

type fakeOffers struct {
	names map[int64]string
	err   error
}

func (f fakeOffers) OfferNames(context.Context) (map[int64]string, error) {
	return f.names, f.err
}

type fakePublishers struct {
	names map[int64]string
	err   error
}

func (f fakePublishers) PublisherNames(context.Context) (map[int64]string, error) {
	return f.names, f.err
}

func TestResolveBuildsBothMaps(t *testing.T) {
	resolver := NewResolver(
		fakeOffers{names: map[int64]string{11: "Summer Promo"}},
		fakePublishers{names: map[int64]string{7: "Acme Media"}},
	)

	got, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if name := got.OfferName(11); name != "Summer Promo" {
		t.Fatalf("offer name = %q, want Summer Promo", name)
	}
	if name, ok := got.PublisherName(7); !ok || name != "Acme Media" {
		t.Fatalf("publisher name = %q/%v, want Acme Media", name, ok)
	}
}

func TestOfferNameFallsBackToAll(t *testing.T) {
	n := Names{Offers: NewMap(map[int64]string{11: "Summer Promo"})}
	if got := n.OfferName(0); got != "ALL" {
		t.Fatalf("offer name for 0 = %q, want ALL", got)
	}
	if got := n.OfferName(99); got != "ALL" {
		t.Fatalf("offer name for unknown = %q, want ALL", got)
	}
}

func TestPublisherNameMissIsAbsent(t *testing.T) {
	n := Names{}
	if name, ok := n.PublisherName(3); ok || name != "" {
		t.Fatalf("publisher name = %q/%v, want absent", name, ok)
	}
}

func TestResolveFailsWhenEitherLookupFails(t *testing.T) {
	boom := errors.New("lookup down")
	tests := []struct {
		name       string
		offers     fakeOffers
		publishers fakePublishers
	}{
		{name: "offers", offers: fakeOffers{err: boom}, publishers: fakePublishers{}},
		{name: "publishers", offers: fakeOffers{}, publishers: fakePublishers{err: boom}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(tt.offers, tt.publishers).Resolve(context.Background())
			if !errors.Is(err, boom) {
				t.Fatalf("err = %v, want %v", err, boom)
			}
		})
	}
}

func TestResolveRejectsMissingSources(t *testing.T) {
	if _, err := NewResolver(nil, nil).Resolve(context.Background()); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestMapIsSnapshot(t *testing.T) {
	src := map[int64]string{1: "First"}
	m := NewMap(src)
	src[1] = "Changed"
	src[2] = "Second"

	if name, _ := m.Lookup(1); name != "First" {
		t.Fatalf("snapshot name = %q, want First", name)
	}
	if m.Len() != 1 {
		t.Fatalf("snapshot len = %d, want 1", m.Len())
	}
}
