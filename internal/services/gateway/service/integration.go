package service

import (
	"context"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/view"
)

// IntegrationBackend is the integration domain RemoteInvoker.
type IntegrationBackend interface {
	Create(ctx context.Context, in *backend.IntegrationReq) (*backend.CommandResponse, error)
	Update(ctx context.Context, in *backend.IntegrationUpdateReq) (*backend.CommandResponse, error)
	ChangeStatus(ctx context.Context, in *backend.IntegrationChangeStatusReq) (*backend.CommandResponse, error)
	GetIntegration(ctx context.Context, in *backend.IDRequest) (*backend.IntegrationInfo, error)
	GetAll(ctx context.Context, in *backend.IntegrationParamsReq) (*backend.IntegrationPageRes, error)
	GetClickPlaceholders(ctx context.Context, in *backend.VoidRequest) (*backend.ClickPlaceholdersRes, error)
	Delete(ctx context.Context, in *backend.IDRequest) (*backend.CommandResponse, error)
}

// IntegrationService serves integration commands and reads.
type IntegrationService struct {
	backend IntegrationBackend
	names   NameResolver
}

// NewIntegrationService creates an integration service.
func NewIntegrationService(b IntegrationBackend, resolver NameResolver) *IntegrationService {
	return &IntegrationService{backend: b, names: resolver}
}

// Create adds an integration.
func (s *IntegrationService) Create(ctx context.Context, in backend.IntegrationReq) (CommandResult, error) {
	resp, err := s.backend.Create(ctx, &in)
	if err != nil {
		return CommandResult{}, err
	}
	return commandResult(resp)
}

// Update replaces the fields of integration id.
func (s *IntegrationService) Update(ctx context.Context, id int64, in backend.IntegrationReq) (CommandResult, error) {
	resp, err := s.backend.Update(ctx, &backend.IntegrationUpdateReq{ID: id, Integration: in})
	if err != nil {
		return CommandResult{}, err
	}
	return commandResult(resp)
}

// ChangeStatus moves integration id to status.
func (s *IntegrationService) ChangeStatus(ctx context.Context, id int64, status string) (CommandResult, error) {
	resp, err := s.backend.ChangeStatus(ctx, &backend.IntegrationChangeStatusReq{ID: id, Status: status})
	if err != nil {
		return CommandResult{}, err
	}
	return commandResult(resp)
}

// Delete removes integration id.
func (s *IntegrationService) Delete(ctx context.Context, id int64) (CommandResult, error) {
	resp, err := s.backend.Delete(ctx, &backend.IDRequest{ID: id})
	if err != nil {
		return CommandResult{}, err
	}
	return commandResult(resp)
}

// Get returns one integration with names resolved.
func (s *IntegrationService) Get(ctx context.Context, id int64) (view.IntegrationDetail, error) {
	record, n, err := fetchWithNames(ctx, s.names, func(ctx context.Context) (*backend.IntegrationInfo, error) {
		return s.backend.GetIntegration(ctx, &backend.IDRequest{ID: id})
	})
	if err != nil {
		return view.IntegrationDetail{}, err
	}
	return view.ShapeIntegrationDetail(*record, n), nil
}

// List returns one page of integrations with names resolved.
func (s *IntegrationService) List(ctx context.Context, req filter.Request) (pagination.Page[view.Integration], error) {
	normalized := filter.Normalize(req)
	in := &backend.IntegrationParamsReq{
		Status:      normalized.Status,
		OfferID:     normalized.OfferID,
		PublisherID: normalized.PublisherID,
		Pageable:    pageableOf(normalized),
	}

	res, n, err := fetchWithNames(ctx, s.names, func(ctx context.Context) (*backend.IntegrationPageRes, error) {
		return s.backend.GetAll(ctx, in)
	})
	if err != nil {
		return pagination.Page[view.Integration]{}, err
	}
	return pagination.AssembleMapped(res.Integrations, res.Pageable, view.Integrations(n)), nil
}

// Placeholders returns the postback placeholder tokens. The mapping is
// neither filtered nor paged.
func (s *IntegrationService) Placeholders(ctx context.Context) (map[string]string, error) {
	res, err := s.backend.GetClickPlaceholders(ctx, &backend.VoidRequest{})
	if err != nil {
		return nil, err
	}
	if res.Placeholders == nil {
		return map[string]string{}, nil
	}
	return res.Placeholders, nil
}
