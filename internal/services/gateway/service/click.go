package service

import (
	"context"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/view"
)

// ClickBackend is the click domain RemoteInvoker.
type ClickBackend interface {
	GetAllClickTransactions(ctx context.Context, in *backend.ClickTransactionFilter) (*backend.ClickTransactionContainer, error)
	GetClickTransaction(ctx context.Context, in *backend.IDRequest) (*backend.ClickTransaction, error)
}

// ClickService serves click transaction reads.
type ClickService struct {
	backend ClickBackend
	names   NameResolver
}

// NewClickService creates a click service.
func NewClickService(b ClickBackend, resolver NameResolver) *ClickService {
	return &ClickService{backend: b, names: resolver}
}

// List returns one page of click transactions shaped for r.
func (s *ClickService) List(ctx context.Context, r role.Role, req filter.Request) (pagination.Page[view.ClickTransactionView], error) {
	normalized := filter.Normalize(req)
	in := &backend.ClickTransactionFilter{
		Status:      normalized.Status,
		OfferID:     normalized.OfferID,
		PublisherID: normalized.PublisherID,
		Pageable:    pageableOf(normalized),
	}

	container, n, err := fetchWithNames(ctx, s.names, func(ctx context.Context) (*backend.ClickTransactionContainer, error) {
		return s.backend.GetAllClickTransactions(ctx, in)
	})
	if err != nil {
		return pagination.Page[view.ClickTransactionView]{}, err
	}
	return pagination.AssembleMapped(container.ClickTransactions, container.Pageable, view.ClickTransactions(r, n)), nil
}

// Get returns one click transaction shaped for r.
func (s *ClickService) Get(ctx context.Context, r role.Role, id int64) (view.ClickTransactionView, error) {
	record, n, err := fetchWithNames(ctx, s.names, func(ctx context.Context) (*backend.ClickTransaction, error) {
		return s.backend.GetClickTransaction(ctx, &backend.IDRequest{ID: id})
	})
	if err != nil {
		return nil, err
	}
	return view.ClickTransaction(r, *record, n), nil
}

func pageableOf(n filter.Normalized) backend.Pageable {
	return backend.Pageable{Page: n.Page, Size: n.Size, Sort: n.Sort}
}
