package backend

import (
	"context"

	clickv1 "github.com/gleb-syrov/bamboolead/api/gen/go/click/v1"
	commonv1 "github.com/gleb-syrov/bamboolead/api/gen/go/common/v1"
	integrationv1 "github.com/gleb-syrov/bamboolead/api/gen/go/integration/v1"
	offerv1 "github.com/gleb-syrov/bamboolead/api/gen/go/offer/v1"
	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	userv1 "github.com/gleb-syrov/bamboolead/api/gen/go/user/v1"
	"google.golang.org/grpc"
)

// ClickClient calls the click service.
type ClickClient struct {
	rpc clickv1.ClickServiceClient
}

// NewClickClient creates a click service client.
func NewClickClient(cc grpc.ClientConnInterface) *ClickClient {
	return &ClickClient{rpc: clickv1.NewClickServiceClient(cc)}
}

// GetAllClickTransactions returns one page of click transactions.
func (c *ClickClient) GetAllClickTransactions(ctx context.Context, in *ClickTransactionFilter) (*ClickTransactionContainer, error) {
	resp, err := c.rpc.GetAllClickTransactions(ctx, clickTransactionFilter(in))
	if err != nil {
		return nil, err
	}
	return clickTransactionContainer(resp)
}

// GetClickTransaction returns one click transaction.
func (c *ClickClient) GetClickTransaction(ctx context.Context, in *IDRequest) (*ClickTransaction, error) {
	resp, err := c.rpc.GetClickTransaction(ctx, &clickv1.ClickTransactionReq{Id: in.ID})
	if err != nil {
		return nil, err
	}
	d := &decoder{message: "click transaction"}
	tx := d.clickTransaction(resp)
	if err := d.result(); err != nil {
		return nil, err
	}
	return &tx, nil
}

// IntegrationClient calls the integration service.
type IntegrationClient struct {
	rpc integrationv1.IntegrationServiceClient
}

// NewIntegrationClient creates an integration service client.
func NewIntegrationClient(cc grpc.ClientConnInterface) *IntegrationClient {
	return &IntegrationClient{rpc: integrationv1.NewIntegrationServiceClient(cc)}
}

// Create adds an integration.
func (c *IntegrationClient) Create(ctx context.Context, in *IntegrationReq) (*CommandResponse, error) {
	resp, err := c.rpc.Create(ctx, integrationReq(*in))
	if err != nil {
		return nil, err
	}
	return commandResponse(resp), nil
}

// Update replaces an integration's fields.
func (c *IntegrationClient) Update(ctx context.Context, in *IntegrationUpdateReq) (*CommandResponse, error) {
	resp, err := c.rpc.Update(ctx, &integrationv1.IntegrationUpdateReq{
		Id:          in.ID,
		Integration: integrationReq(in.Integration),
	})
	if err != nil {
		return nil, err
	}
	return commandResponse(resp), nil
}

// ChangeStatus moves an integration to a new status.
func (c *IntegrationClient) ChangeStatus(ctx context.Context, in *IntegrationChangeStatusReq) (*CommandResponse, error) {
	resp, err := c.rpc.ChangeStatus(ctx, &integrationv1.IntegrationChangeStatusReq{Id: in.ID, Status: in.Status})
	if err != nil {
		return nil, err
	}
	return commandResponse(resp), nil
}

// GetIntegration returns one integration.
func (c *IntegrationClient) GetIntegration(ctx context.Context, in *IDRequest) (*IntegrationInfo, error) {
	resp, err := c.rpc.GetIntegration(ctx, &integrationv1.IntegrationInfoReq{Id: in.ID})
	if err != nil {
		return nil, err
	}
	return integrationInfo(resp), nil
}

// GetAll returns one page of integrations.
func (c *IntegrationClient) GetAll(ctx context.Context, in *IntegrationParamsReq) (*IntegrationPageRes, error) {
	resp, err := c.rpc.GetAll(ctx, &integrationv1.IntegrationParamsReq{
		Status:      in.Status,
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		Pageable:    pageableReq(in.Pageable),
	})
	if err != nil {
		return nil, err
	}
	return integrationPage(resp), nil
}

// GetClickPlaceholders returns the postback placeholder tokens.
func (c *IntegrationClient) GetClickPlaceholders(ctx context.Context, _ *VoidRequest) (*ClickPlaceholdersRes, error) {
	resp, err := c.rpc.GetClickPlaceholders(ctx, &commonv1.VoidReq{})
	if err != nil {
		return nil, err
	}
	return &ClickPlaceholdersRes{Placeholders: resp.GetPlaceholders()}, nil
}

// Delete removes an integration.
func (c *IntegrationClient) Delete(ctx context.Context, in *IDRequest) (*CommandResponse, error) {
	resp, err := c.rpc.Delete(ctx, &integrationv1.IntegrationInfoReq{Id: in.ID})
	if err != nil {
		return nil, err
	}
	return commandResponse(resp), nil
}

// StatisticClient calls the statistic service.
type StatisticClient struct {
	rpc statisticv1.StatisticServiceClient
}

// NewStatisticClient creates a statistic service client.
func NewStatisticClient(cc grpc.ClientConnInterface) *StatisticClient {
	return &StatisticClient{rpc: statisticv1.NewStatisticServiceClient(cc)}
}

// RPC returns the generated client, for callers that relay statistic
// messages without converting them.
func (c *StatisticClient) RPC() statisticv1.StatisticServiceClient {
	return c.rpc
}

// GetGlobalStatistic returns totals for the filter.
func (c *StatisticClient) GetGlobalStatistic(ctx context.Context, in *StatisticFilter) (*GlobalStatistic, error) {
	resp, err := c.rpc.GetGlobalStatistic(ctx, &statisticv1.GlobalStatisticReq{
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
	})
	if err != nil {
		return nil, err
	}
	return globalStatistic(resp)
}

// GetClicksPerDay returns click counts per day.
func (c *StatisticClient) GetClicksPerDay(ctx context.Context, in *StatisticFilter) (*ClicksPerDayResp, error) {
	resp, err := c.rpc.GetClicksPerDay(ctx, &statisticv1.ClicksPerDayReq{
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
	})
	if err != nil {
		return nil, err
	}
	return clicksPerDay(resp), nil
}

// GetAllDailyStatistic returns one page of daily statistics.
func (c *StatisticClient) GetAllDailyStatistic(ctx context.Context, in *StatisticFilter) (*DailyClickStatisticContainer, error) {
	resp, err := c.rpc.GetAllDailyStatistic(ctx, dailyFilter(in))
	if err != nil {
		return nil, err
	}
	return dailyStatistics(resp)
}

// GetAllDailyStatisticTotal sums daily statistics across the filter.
func (c *StatisticClient) GetAllDailyStatisticTotal(ctx context.Context, in *StatisticFilter) (*DailyClickStatisticTotal, error) {
	resp, err := c.rpc.GetAllDailyStatisticTotal(ctx, dailyFilter(in))
	if err != nil {
		return nil, err
	}
	return dailyStatisticTotal(resp)
}

// GetUtmStatistic returns one page of a UTM breakdown.
func (c *StatisticClient) GetUtmStatistic(ctx context.Context, in *UtmStatisticReq) (*UtmStatisticRes, error) {
	resp, err := c.rpc.GetUtmStatistic(ctx, &statisticv1.UtmStatisticReq{
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
		Dimension:   in.Dimension,
		Pageable:    pageableReq(in.Pageable),
	})
	if err != nil {
		return nil, err
	}
	return utmStatistics(resp)
}

func dailyFilter(in *StatisticFilter) *statisticv1.DailyClickStatisticsFilter {
	out := &statisticv1.DailyClickStatisticsFilter{
		OfferId:     in.OfferID,
		PublisherId: in.PublisherID,
		DateFrom:    in.DateFrom,
		DateTo:      in.DateTo,
	}
	if in.Pageable != nil {
		out.Pageable = pageableReq(*in.Pageable)
	}
	return out
}

// OfferLookupClient lists offer names.
type OfferLookupClient struct {
	rpc offerv1.OfferServiceClient
}

// NewOfferLookupClient creates an offer lookup client.
func NewOfferLookupClient(cc grpc.ClientConnInterface) *OfferLookupClient {
	return &OfferLookupClient{rpc: offerv1.NewOfferServiceClient(cc)}
}

// OfferNames returns the offer id to name mapping.
func (c *OfferLookupClient) OfferNames(ctx context.Context) (map[int64]string, error) {
	resp, err := c.rpc.GetOfferNames(ctx, &commonv1.VoidReq{})
	if err != nil {
		return nil, err
	}
	return resp.GetNames(), nil
}

// PublisherLookupClient lists publisher names.
type PublisherLookupClient struct {
	rpc userv1.SystemUserServiceClient
}

// NewPublisherLookupClient creates a publisher lookup client.
func NewPublisherLookupClient(cc grpc.ClientConnInterface) *PublisherLookupClient {
	return &PublisherLookupClient{rpc: userv1.NewSystemUserServiceClient(cc)}
}

// PublisherNames returns the publisher id to name mapping.
func (c *PublisherLookupClient) PublisherNames(ctx context.Context) (map[int64]string, error) {
	resp, err := c.rpc.GetPublisherNames(ctx, &commonv1.VoidReq{})
	if err != nil {
		return nil, err
	}
	return resp.GetNames(), nil
}
