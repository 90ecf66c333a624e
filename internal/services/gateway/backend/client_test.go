package backend

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	clickv1 "github.com/gleb-syrov/bamboolead/api/gen/go/click/v1"
	commonv1 "github.com/gleb-syrov/bamboolead/api/gen/go/common/v1"
	integrationv1 "github.com/gleb-syrov/bamboolead/api/gen/go/integration/v1"
	offerv1 "github.com/gleb-syrov/bamboolead/api/gen/go/offer/v1"
	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	userv1 "github.com/gleb-syrov/bamboolead/api/gen/go/user/v1"
	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend/backendtest"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestClickClientRoundTrip(t *testing.T) {
	srv := backendtest.Start(t)
	clickID := uuid.MustParse("6f1c2f7e-1f44-4c63-9f6b-0a4c1c1b9e21")
	created := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	var got *clickv1.ClickTransactionFilter
	backendtest.Handle(srv, clickv1.ClickService_GetAllClickTransactions_FullMethodName, func(_ context.Context, in *clickv1.ClickTransactionFilter) (*clickv1.ClickTransactionContainer, error) {
		got = in
		return &clickv1.ClickTransactionContainer{
			ClickTransactions: []*clickv1.ClickTransaction{{
				Id:          1,
				ClickId:     clickID.String(),
				OfferId:     11,
				PublisherId: 7,
				Payout:      "1.25",
				CreatedAt:   timestamppb.New(created),
			}},
			Pageable: &commonv1.PageableRes{Number: 0, Size: 20, TotalElements: 57},
		}, nil
	})

	client := NewClickClient(srv.Conn(t))
	resp, err := client.GetAllClickTransactions(context.Background(), &ClickTransactionFilter{
		Status:      "ALL",
		PublisherID: 7,
		Pageable:    Pageable{Page: 0, Size: 20, Sort: "id,desc"},
	})
	if err != nil {
		t.Fatalf("get all click transactions: %v", err)
	}

	if got.GetStatus() != "ALL" || got.GetPublisherId() != 7 || got.GetPageable().GetSort() != "id,desc" {
		t.Fatalf("backend received %v", got)
	}
	if resp.Pageable.TotalElements != 57 {
		t.Fatalf("total elements = %d, want 57", resp.Pageable.TotalElements)
	}
	record := resp.ClickTransactions[0]
	if record.ClickID != clickID {
		t.Fatalf("click id = %v, want %v", record.ClickID, clickID)
	}
	if !record.Payout.Equal(decimal.RequireFromString("1.25")) {
		t.Fatalf("payout = %v, want 1.25", record.Payout)
	}
	if !record.Revenue.IsZero() {
		t.Fatalf("revenue = %v, want zero for an empty field", record.Revenue)
	}
	if !record.CreatedAt.Equal(created) {
		t.Fatalf("created at = %v, want %v", record.CreatedAt, created)
	}
}

func TestClickClientRejectsMalformedPayout(t *testing.T) {
	srv := backendtest.Start(t)
	backendtest.Handle(srv, clickv1.ClickService_GetClickTransaction_FullMethodName, func(context.Context, *clickv1.ClickTransactionReq) (*clickv1.ClickTransaction, error) {
		return &clickv1.ClickTransaction{Id: 3, Payout: "one dollar"}, nil
	})

	_, err := NewClickClient(srv.Conn(t)).GetClickTransaction(context.Background(), &IDRequest{ID: 3})
	var gatewayErr *apperrors.Error
	if !stderrors.As(err, &gatewayErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	if gatewayErr.Code != apperrors.CodeBackendFailure {
		t.Fatalf("code = %s, want %s", gatewayErr.Code, apperrors.CodeBackendFailure)
	}
}

func TestIntegrationRequestDecodesWithProtoCodec(t *testing.T) {
	srv := backendtest.Start(t)
	var gotID int64
	backendtest.Handle(srv, integrationv1.IntegrationService_GetIntegration_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationInfoReq) (*integrationv1.IntegrationInfoRes, error) {
		gotID = in.GetId()
		return &integrationv1.IntegrationInfoRes{Id: in.GetId(), Name: "postback", Url: "https://tracker.example/pb"}, nil
	})

	info, err := NewIntegrationClient(srv.Conn(t)).GetIntegration(context.Background(), &IDRequest{ID: 9})
	if err != nil {
		t.Fatalf("get integration: %v", err)
	}
	if gotID != 9 {
		t.Fatalf("backend decoded id %d, want 9", gotID)
	}
	if info.ID != 9 || info.Name != "postback" || info.URL != "https://tracker.example/pb" {
		t.Fatalf("integration = %+v", info)
	}
}

func TestClientSurfacesBackendErrorUnchanged(t *testing.T) {
	srv := backendtest.Start(t)
	backendtest.Handle(srv, integrationv1.IntegrationService_GetIntegration_FullMethodName, func(context.Context, *integrationv1.IntegrationInfoReq) (*integrationv1.IntegrationInfoRes, error) {
		return nil, status.Error(codes.NotFound, "not found")
	})

	client := NewIntegrationClient(srv.Conn(t))
	_, err := client.GetIntegration(context.Background(), &IDRequest{ID: 404})
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %T", err)
	}
	if st.Code() != codes.NotFound || st.Message() != "not found" {
		t.Fatalf("status = %v %q", st.Code(), st.Message())
	}
	if n := srv.Calls(integrationv1.IntegrationService_GetIntegration_FullMethodName); n != 1 {
		t.Fatalf("calls = %d, want exactly 1 (no retries)", n)
	}
}

func TestIntegrationCommands(t *testing.T) {
	srv := backendtest.Start(t)
	var updated *integrationv1.IntegrationUpdateReq
	backendtest.Handle(srv, integrationv1.IntegrationService_Create_FullMethodName, func(context.Context, *integrationv1.IntegrationReq) (*integrationv1.IntegrationCommandRes, error) {
		return &integrationv1.IntegrationCommandRes{Success: true, Id: 5}, nil
	})
	backendtest.Handle(srv, integrationv1.IntegrationService_Update_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationUpdateReq) (*integrationv1.IntegrationCommandRes, error) {
		updated = in
		return &integrationv1.IntegrationCommandRes{Success: true, Id: in.GetId()}, nil
	})
	backendtest.Handle(srv, integrationv1.IntegrationService_ChangeStatus_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationChangeStatusReq) (*integrationv1.IntegrationCommandRes, error) {
		return &integrationv1.IntegrationCommandRes{Success: in.GetStatus() == "ACTIVE", Message: "status " + in.GetStatus()}, nil
	})
	backendtest.Handle(srv, integrationv1.IntegrationService_Delete_FullMethodName, func(context.Context, *integrationv1.IntegrationInfoReq) (*integrationv1.IntegrationCommandRes, error) {
		return &integrationv1.IntegrationCommandRes{Success: false, Message: "integration is active"}, nil
	})

	client := NewIntegrationClient(srv.Conn(t))
	ctx := context.Background()

	created, err := client.Create(ctx, &IntegrationReq{Name: "postback"})
	if err != nil || !created.Success || created.ID != 5 {
		t.Fatalf("create = %+v, %v", created, err)
	}
	if _, err := client.Update(ctx, &IntegrationUpdateReq{ID: 5, Integration: IntegrationReq{Name: "renamed"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.GetId() != 5 || updated.GetIntegration().GetName() != "renamed" {
		t.Fatalf("update received %v", updated)
	}
	changed, err := client.ChangeStatus(ctx, &IntegrationChangeStatusReq{ID: 5, Status: "INACTIVE"})
	if err != nil || changed.Success {
		t.Fatalf("change status = %+v, %v", changed, err)
	}
	deleted, err := client.Delete(ctx, &IDRequest{ID: 5})
	if err != nil || deleted.Success || deleted.Message != "integration is active" {
		t.Fatalf("delete = %+v, %v", deleted, err)
	}
}

func TestStatisticClientDailyTotalOmitsPageable(t *testing.T) {
	srv := backendtest.Start(t)
	var sawPageable bool
	backendtest.Handle(srv, statisticv1.StatisticService_GetAllDailyStatisticTotal_FullMethodName, func(_ context.Context, in *statisticv1.DailyClickStatisticsFilter) (*statisticv1.DailyClickStatisticTotalRes, error) {
		sawPageable = in.GetPageable() != nil
		return &statisticv1.DailyClickStatisticTotalRes{Clicks: 12, Revenue: "3.50"}, nil
	})

	client := NewStatisticClient(srv.Conn(t))
	total, err := client.GetAllDailyStatisticTotal(context.Background(), &StatisticFilter{DateFrom: "2026-03-01", DateTo: "2026-03-31"})
	if err != nil {
		t.Fatalf("daily total: %v", err)
	}
	if sawPageable {
		t.Fatal("expected no pageable on the wire")
	}
	if total.Clicks != 12 || !total.Revenue.Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("total = %+v", total)
	}
}

func TestLookupClients(t *testing.T) {
	srv := backendtest.Start(t)
	backendtest.Handle(srv, offerv1.OfferService_GetOfferNames_FullMethodName, func(context.Context, *commonv1.VoidReq) (*offerv1.OfferNamesRes, error) {
		return &offerv1.OfferNamesRes{Names: map[int64]string{11: "Summer Promo"}}, nil
	})
	backendtest.Handle(srv, userv1.SystemUserService_GetPublisherNames_FullMethodName, func(context.Context, *commonv1.VoidReq) (*userv1.PublisherNamesRes, error) {
		return &userv1.PublisherNamesRes{Names: map[int64]string{7: "Acme Media"}}, nil
	})
	conn := srv.Conn(t)

	offers, err := NewOfferLookupClient(conn).OfferNames(context.Background())
	if err != nil || offers[11] != "Summer Promo" {
		t.Fatalf("offer names = %v, %v", offers, err)
	}
	publishers, err := NewPublisherLookupClient(conn).PublisherNames(context.Background())
	if err != nil || publishers[7] != "Acme Media" {
		t.Fatalf("publisher names = %v, %v", publishers, err)
	}
}

func TestUnregisteredMethodIsUnimplemented(t *testing.T) {
	srv := backendtest.Start(t)
	_, err := NewIntegrationClient(srv.Conn(t)).GetClickPlaceholders(context.Background(), &VoidRequest{})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unimplemented)
	}
}
