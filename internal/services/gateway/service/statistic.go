package service

import (
	"context"
	"slices"
	"time"

	"github.com/gleb-syrov/bamboolead/internal/platform/pagination"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/filter"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/view"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
)

// DefaultStatisticRange is the window used when a query has no dates.
const DefaultStatisticRange = 30 * 24 * time.Hour

// UTM dimensions a breakdown can be grouped by.
var UtmDimensions = []string{"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term"}

// StatisticBackend is the statistic domain RemoteInvoker.
type StatisticBackend interface {
	GetGlobalStatistic(ctx context.Context, in *backend.StatisticFilter) (*backend.GlobalStatistic, error)
	GetClicksPerDay(ctx context.Context, in *backend.StatisticFilter) (*backend.ClicksPerDayResp, error)
	GetAllDailyStatistic(ctx context.Context, in *backend.StatisticFilter) (*backend.DailyClickStatisticContainer, error)
	GetAllDailyStatisticTotal(ctx context.Context, in *backend.StatisticFilter) (*backend.DailyClickStatisticTotal, error)
	GetUtmStatistic(ctx context.Context, in *backend.UtmStatisticReq) (*backend.UtmStatisticRes, error)
}

// StatisticQuery selects statistics. Status in Filter is ignored; nil dates
// default to the DefaultStatisticRange ending today.
type StatisticQuery struct {
	Filter   filter.Request
	DateFrom *time.Time
	DateTo   *time.Time
}

// StatisticService serves read-only statistic queries.
type StatisticService struct {
	backend StatisticBackend
	names   NameResolver
	now     func() time.Time
}

// NewStatisticService creates a statistic service.
func NewStatisticService(b StatisticBackend, resolver NameResolver) *StatisticService {
	return &StatisticService{backend: b, names: resolver, now: time.Now}
}

// Global returns totals for the query.
func (s *StatisticService) Global(ctx context.Context, q StatisticQuery) (view.GlobalStatistic, error) {
	in, err := s.statisticFilter(q, false)
	if err != nil {
		return view.GlobalStatistic{}, err
	}
	res, err := s.backend.GetGlobalStatistic(ctx, in)
	if err != nil {
		return view.GlobalStatistic{}, err
	}
	return *res, nil
}

// ClicksPerDay returns click counts per day.
func (s *StatisticService) ClicksPerDay(ctx context.Context, q StatisticQuery) ([]view.ClickPerDay, error) {
	in, err := s.statisticFilter(q, false)
	if err != nil {
		return nil, err
	}
	res, err := s.backend.GetClicksPerDay(ctx, in)
	if err != nil {
		return nil, err
	}
	if res.ClickPerDayList == nil {
		return []view.ClickPerDay{}, nil
	}
	return res.ClickPerDayList, nil
}

// Daily returns one page of daily statistics with names resolved.
func (s *StatisticService) Daily(ctx context.Context, q StatisticQuery) (pagination.Page[view.DailyStatistic], error) {
	in, err := s.statisticFilter(q, true)
	if err != nil {
		return pagination.Page[view.DailyStatistic]{}, err
	}
	res, n, err := fetchWithNames(ctx, s.names, func(ctx context.Context) (*backend.DailyClickStatisticContainer, error) {
		return s.backend.GetAllDailyStatistic(ctx, in)
	})
	if err != nil {
		return pagination.Page[view.DailyStatistic]{}, err
	}
	return pagination.AssembleMapped(res.DailyClickStatistic, res.Pageable, view.DailyStatistics(n)), nil
}

// DailyTotal sums the daily statistics of the query across all pages.
func (s *StatisticService) DailyTotal(ctx context.Context, q StatisticQuery) (view.DailyStatisticTotal, error) {
	in, err := s.statisticFilter(q, false)
	if err != nil {
		return view.DailyStatisticTotal{}, err
	}
	res, err := s.backend.GetAllDailyStatisticTotal(ctx, in)
	if err != nil {
		return view.DailyStatisticTotal{}, err
	}
	return *res, nil
}

// Utm returns one page of the breakdown along dimension.
func (s *StatisticService) Utm(ctx context.Context, q StatisticQuery, dimension string) (pagination.Page[view.UtmStatistic], error) {
	if !IsUtmDimension(dimension) {
		return pagination.Page[view.UtmStatistic]{}, apperrors.New(apperrors.CodeInvalidArgument, "unknown utm dimension "+dimension)
	}
	base, err := s.statisticFilter(q, true)
	if err != nil {
		return pagination.Page[view.UtmStatistic]{}, err
	}
	res, err := s.backend.GetUtmStatistic(ctx, &backend.UtmStatisticReq{
		OfferID:     base.OfferID,
		PublisherID: base.PublisherID,
		DateFrom:    base.DateFrom,
		DateTo:      base.DateTo,
		Dimension:   dimension,
		Pageable:    *base.Pageable,
	})
	if err != nil {
		return pagination.Page[view.UtmStatistic]{}, err
	}
	return pagination.Assemble(res.UtmStatisticList, res.Pageable), nil
}

// IsUtmDimension reports whether dimension is one of UtmDimensions.
func IsUtmDimension(dimension string) bool {
	return slices.Contains(UtmDimensions, dimension)
}

func (s *StatisticService) statisticFilter(q StatisticQuery, paged bool) (*backend.StatisticFilter, error) {
	normalized := filter.Normalize(q.Filter)
	from, to, err := s.dateRange(q.DateFrom, q.DateTo)
	if err != nil {
		return nil, err
	}
	in := &backend.StatisticFilter{
		OfferID:     normalized.OfferID,
		PublisherID: normalized.PublisherID,
		DateFrom:    from.Format(time.DateOnly),
		DateTo:      to.Format(time.DateOnly),
	}
	if paged {
		pageable := pageableOf(normalized)
		in.Pageable = &pageable
	}
	return in, nil
}

func (s *StatisticService) dateRange(from, to *time.Time) (time.Time, time.Time, error) {
	end := s.now().UTC()
	if to != nil {
		end = *to
	}
	start := end.Add(-DefaultStatisticRange)
	if from != nil {
		start = *from
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, apperrors.New(apperrors.CodeInvalidArgument, "dateFrom must not be after dateTo")
	}
	return start, end, nil
}
