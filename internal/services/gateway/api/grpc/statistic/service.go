// Package statistic serves the statistic gRPC API by relaying each call to
// the statistic backend.
package statistic

import (
	"context"

	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	"github.com/gleb-syrov/bamboolead/internal/platform/requestctx"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Service relays statistic requests unchanged. Backend failures are returned
// as the backend reported them.
type Service struct {
	statisticv1.UnimplementedStatisticServiceServer
	upstream statisticv1.StatisticServiceClient
}

// NewService builds the relay on top of the statistic backend client.
func NewService(upstream statisticv1.StatisticServiceClient) *Service {
	return &Service{upstream: upstream}
}

// GetGlobalStatistic returns totals for the requested range.
func (s *Service) GetGlobalStatistic(ctx context.Context, in *statisticv1.GlobalStatisticReq) (*statisticv1.GlobalStatisticResp, error) {
	if err := s.check(in == nil, "global statistic"); err != nil {
		return nil, err
	}
	return s.upstream.GetGlobalStatistic(ctx, in)
}

// GetClicksPerDay returns click counts per day.
func (s *Service) GetClicksPerDay(ctx context.Context, in *statisticv1.ClicksPerDayReq) (*statisticv1.ClicksPerDayResp, error) {
	if err := s.check(in == nil, "clicks per day"); err != nil {
		return nil, err
	}
	return s.upstream.GetClicksPerDay(ctx, in)
}

// GetAllDailyStatistic returns one page of daily statistics.
func (s *Service) GetAllDailyStatistic(ctx context.Context, in *statisticv1.DailyClickStatisticsFilter) (*statisticv1.DailyClickStatisticContainer, error) {
	if err := s.check(in == nil, "daily statistic"); err != nil {
		return nil, err
	}
	return s.upstream.GetAllDailyStatistic(ctx, in)
}

// GetAllDailyStatisticTotal sums daily statistics across the filter.
func (s *Service) GetAllDailyStatisticTotal(ctx context.Context, in *statisticv1.DailyClickStatisticsFilter) (*statisticv1.DailyClickStatisticTotalRes, error) {
	if err := s.check(in == nil, "daily statistic total"); err != nil {
		return nil, err
	}
	return s.upstream.GetAllDailyStatisticTotal(ctx, in)
}

// GetUtmStatistic returns one page of a UTM breakdown.
func (s *Service) GetUtmStatistic(ctx context.Context, in *statisticv1.UtmStatisticReq) (*statisticv1.UtmStatisticRes, error) {
	if err := s.check(in == nil, "utm statistic"); err != nil {
		return nil, err
	}
	return s.upstream.GetUtmStatistic(ctx, in)
}

func (s *Service) check(missing bool, name string) error {
	if missing {
		return status.Errorf(codes.InvalidArgument, "%s request is required", name)
	}
	if s.upstream == nil {
		return status.Error(codes.Internal, "statistic backend is not configured")
	}
	return nil
}

// CallerContextUnaryServerInterceptor lifts the request id and role headers
// of an incoming call into context, so the relayed call carries them on.
// A missing or unknown role leaves the caller a Publisher.
func CallerContextUnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		if values := md.Get(backend.RequestIDHeader); len(values) > 0 {
			ctx = requestctx.WithRequestID(ctx, requestctx.EnsureRequestID(values[0]))
		}
		if values := md.Get(backend.RoleHeader); len(values) > 0 {
			if r, err := role.Parse(values[0]); err == nil {
				ctx = role.WithRole(ctx, r)
			}
		}
		return handler(ctx, req)
	}
}
