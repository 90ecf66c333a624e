package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	clickv1 "github.com/gleb-syrov/bamboolead/api/gen/go/click/v1"
	commonv1 "github.com/gleb-syrov/bamboolead/api/gen/go/common/v1"
	integrationv1 "github.com/gleb-syrov/bamboolead/api/gen/go/integration/v1"
	offerv1 "github.com/gleb-syrov/bamboolead/api/gen/go/offer/v1"
	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	userv1 "github.com/gleb-syrov/bamboolead/api/gen/go/user/v1"
	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
	"github.com/gleb-syrov/bamboolead/internal/platform/requestctx"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend/backendtest"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/metrics"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/service"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	backend *backendtest.Server
	handler *Handler
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	srv := backendtest.Start(t)
	backendtest.Handle(srv, offerv1.OfferService_GetOfferNames_FullMethodName, func(context.Context, *commonv1.VoidReq) (*offerv1.OfferNamesRes, error) {
		return &offerv1.OfferNamesRes{Names: map[int64]string{11: "Summer Promo"}}, nil
	})
	backendtest.Handle(srv, userv1.SystemUserService_GetPublisherNames_FullMethodName, func(context.Context, *commonv1.VoidReq) (*userv1.PublisherNamesRes, error) {
		return &userv1.PublisherNamesRes{Names: map[int64]string{7: "Acme Media"}}, nil
	})

	conn := srv.Conn(t)
	resolver := names.NewResolver(backend.NewOfferLookupClient(conn), backend.NewPublisherLookupClient(conn))
	m := metrics.New()
	h, err := NewHandler(Config{
		JWTSecret:      testSecret,
		RequestTimeout: 5 * time.Second,
		Metrics:        m,
		Clicks:         service.NewClickService(backend.NewClickClient(conn), resolver),
		Integrations:   service.NewIntegrationService(backend.NewIntegrationClient(conn), resolver),
		Statistics:     service.NewStatisticService(backend.NewStatisticClient(conn), resolver),
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return &testEnv{backend: srv, handler: h, metrics: m}
}

func signToken(t *testing.T, roleName string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: roleName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func (e *testEnv) do(t *testing.T, method, target, roleName, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if roleName != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(t, roleName))
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthzAndMetricsAreUnauthenticated(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.do(t, http.MethodGet, "/healthz", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	rec := env.do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `route="/healthz"`) {
		t.Fatalf("expected healthz request in metrics, got:\n%s", rec.Body.String())
	}
}

func TestAuthentication(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage", header: "Bearer not-a-token"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/integrations", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			env.handler.ServeHTTP(rec, req)
			if rec.Code != apperrors.CodeUnauthenticated.HTTPStatus() {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if got := decode[map[string]string](t, rec); got["error"] == "" {
				t.Fatalf("body = %v, want error message", got)
			}
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/integrations", "AUDITOR", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/v2/integrations", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decode[map[string]string](t, rec); got["error"] != "not found" {
		t.Fatalf("body = %v", got)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestctx.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestctx.RequestIDHeader); got != "req-42" {
		t.Fatalf("request id = %q, want req-42", got)
	}
}

func TestListIntegrationsPublisherScenario(t *testing.T) {
	env := newTestEnv(t)
	var received *integrationv1.IntegrationParamsReq
	backendtest.Handle(env.backend, integrationv1.IntegrationService_GetAll_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationParamsReq) (*integrationv1.IntegrationPageRes, error) {
		received = in
		return &integrationv1.IntegrationPageRes{
			Integrations: []*integrationv1.IntegrationShortInfo{{Id: 1, Name: "postback", OfferId: 0, PublisherId: 7}},
			Pageable:     &commonv1.PageableRes{Number: 0, Size: 20, TotalElements: 57},
		}, nil
	})

	rec := env.do(t, http.MethodGet, "/api/v1/integrations?publisherId=7&page=0&size=20&sort=id,desc", "PUBLISHER", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if received.GetStatus() != "ALL" || received.GetOfferId() != 0 || received.GetPublisherId() != 7 {
		t.Fatalf("backend received %v", received)
	}
	if received.GetPageable().GetSort() != "id,desc" || received.GetPageable().GetSize() != 20 {
		t.Fatalf("pageable = %v", received.GetPageable())
	}

	page := decode[struct {
		Content []struct {
			OfferName     string `json:"offerName"`
			PublisherName string `json:"publisherName"`
		} `json:"content"`
		TotalElements int64 `json:"totalElements"`
	}](t, rec)
	if page.TotalElements != 57 {
		t.Fatalf("total elements = %d, want 57", page.TotalElements)
	}
	if page.Content[0].OfferName != "ALL" || page.Content[0].PublisherName != "Acme Media" {
		t.Fatalf("item = %+v", page.Content[0])
	}
}

func TestSortForwardedInCanonicalForm(t *testing.T) {
	env := newTestEnv(t)
	var sorts []string
	backendtest.Handle(env.backend, integrationv1.IntegrationService_GetAll_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationParamsReq) (*integrationv1.IntegrationPageRes, error) {
		sorts = append(sorts, in.GetPageable().GetSort())
		return &integrationv1.IntegrationPageRes{}, nil
	})

	for _, sort := range []string{"id%20,%20asc", "id,DESC", "id"} {
		rec := env.do(t, http.MethodGet, "/api/v1/integrations?sort="+sort, "ADMIN", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("sort %s: status = %d, body = %s", sort, rec.Code, rec.Body.String())
		}
	}
	want := []string{"id,asc", "id,desc", "id,asc"}
	if strings.Join(sorts, "|") != strings.Join(want, "|") {
		t.Fatalf("forwarded sorts = %q, want %q", sorts, want)
	}
}

func TestGetIntegrationNotFoundSurfacesMessage(t *testing.T) {
	env := newTestEnv(t)
	backendtest.Handle(env.backend, integrationv1.IntegrationService_GetIntegration_FullMethodName, func(context.Context, *integrationv1.IntegrationInfoReq) (*integrationv1.IntegrationInfoRes, error) {
		return nil, status.Error(codes.NotFound, "not found")
	})

	rec := env.do(t, http.MethodGet, "/api/v1/integrations/404", "ADMIN", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec.Body.String() != "not found" {
		t.Fatalf("body = %q, want %q", rec.Body.String(), "not found")
	}
}

func TestListingFailureIsGenericServerError(t *testing.T) {
	env := newTestEnv(t)
	backendtest.Handle(env.backend, clickv1.ClickService_GetAllClickTransactions_FullMethodName, func(context.Context, *clickv1.ClickTransactionFilter) (*clickv1.ClickTransactionContainer, error) {
		return nil, status.Error(codes.Internal, "db password rejected for user click")
	})

	rec := env.do(t, http.MethodGet, "/api/v1/click-transactions", "ADMIN", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("backend message leaked: %s", rec.Body.String())
	}
}

func TestBackendFailureLogsClassifiedCode(t *testing.T) {
	env := newTestEnv(t)
	core, logs := observer.New(zap.WarnLevel)
	env.handler.logger = zap.New(core)
	backendtest.Handle(env.backend, clickv1.ClickService_GetAllClickTransactions_FullMethodName, func(context.Context, *clickv1.ClickTransactionFilter) (*clickv1.ClickTransactionContainer, error) {
		return nil, status.Error(codes.Unavailable, "click service draining")
	})

	rec := env.do(t, http.MethodGet, "/api/v1/click-transactions", "ADMIN", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	entries := logs.FilterMessage("backend call failed").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["code"]; got != string(apperrors.CodeBackendUnavailable) {
		t.Fatalf("logged code = %v, want %s", got, apperrors.CodeBackendUnavailable)
	}
}

func TestUndecodableReplyIsServerError(t *testing.T) {
	env := newTestEnv(t)
	core, logs := observer.New(zap.WarnLevel)
	env.handler.logger = zap.New(core)
	backendtest.Handle(env.backend, clickv1.ClickService_GetClickTransaction_FullMethodName, func(_ context.Context, in *clickv1.ClickTransactionReq) (*clickv1.ClickTransaction, error) {
		return &clickv1.ClickTransaction{Id: in.GetId(), ClickId: "not-a-uuid"}, nil
	})

	rec := env.do(t, http.MethodGet, "/api/v1/click-transactions/3", "ADMIN", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "not-a-uuid") {
		t.Fatalf("decode cause leaked: %s", rec.Body.String())
	}
	if n := logs.FilterMessage("backend reply rejected").Len(); n != 1 {
		t.Fatalf("log entries = %d, want 1", n)
	}
}

func TestClickTransactionShapeByRole(t *testing.T) {
	env := newTestEnv(t)
	backendtest.Handle(env.backend, clickv1.ClickService_GetClickTransaction_FullMethodName, func(_ context.Context, in *clickv1.ClickTransactionReq) (*clickv1.ClickTransaction, error) {
		return &clickv1.ClickTransaction{Id: in.GetId(), OfferId: 11, PublisherId: 7, Ip: "203.0.113.9", Status: "APPROVED"}, nil
	})

	admin := decode[map[string]any](t, env.do(t, http.MethodGet, "/api/v1/click-transactions/3", "ADMIN", ""))
	publisher := decode[map[string]any](t, env.do(t, http.MethodGet, "/api/v1/click-transactions/3", "publisher", ""))

	if admin["ip"] != "203.0.113.9" || admin["publisherName"] != "Acme Media" {
		t.Fatalf("admin = %v", admin)
	}
	if _, ok := publisher["ip"]; ok {
		t.Fatalf("publisher sees ip: %v", publisher)
	}
	if publisher["offerName"] != "Summer Promo" {
		t.Fatalf("publisher offer name = %v", publisher["offerName"])
	}
}

func TestPlaceholdersIgnoreQuery(t *testing.T) {
	env := newTestEnv(t)
	backendtest.Handle(env.backend, integrationv1.IntegrationService_GetClickPlaceholders_FullMethodName, func(context.Context, *commonv1.VoidReq) (*integrationv1.ClickPlaceholdersRes, error) {
		return &integrationv1.ClickPlaceholdersRes{Placeholders: map[string]string{"utm_source": "UTM Source", "click_id": "Click ID"}}, nil
	})

	for _, target := range []string{
		"/api/v1/integrations/placeholders",
		"/api/v1/integrations/placeholders?status=bogus&offerId=-1&page=x&sort=nope",
	} {
		rec := env.do(t, http.MethodGet, target, "PUBLISHER", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		got := decode[map[string]string](t, rec)
		if len(got) != 2 || got["utm_source"] != "UTM Source" {
			t.Fatalf("%s: placeholders = %v", target, got)
		}
	}
}

func TestInvalidQueryParameters(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/v1/integrations?offerId=0",
		"/api/v1/integrations?publisherId=abc",
		"/api/v1/integrations?status=PAUSED",
		"/api/v1/integrations?sort=secret,desc",
		"/api/v1/integrations?sort=id,sideways",
		"/api/v1/integrations?page=-1",
		"/api/v1/integrations/abc",
		"/api/v1/statistics/global?dateFrom=03-01-2026",
		"/api/v1/statistics/utm?dimension=utm_nope",
	} {
		rec := env.do(t, http.MethodGet, target, "ADMIN", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestIntegrationCommands(t *testing.T) {
	env := newTestEnv(t)
	var created *integrationv1.IntegrationReq
	backendtest.Handle(env.backend, integrationv1.IntegrationService_Create_FullMethodName, func(_ context.Context, in *integrationv1.IntegrationReq) (*integrationv1.IntegrationCommandRes, error) {
		created = in
		return &integrationv1.IntegrationCommandRes{Success: true, Id: 12}, nil
	})
	backendtest.Handle(env.backend, integrationv1.IntegrationService_Delete_FullMethodName, func(context.Context, *integrationv1.IntegrationInfoReq) (*integrationv1.IntegrationCommandRes, error) {
		return &integrationv1.IntegrationCommandRes{Success: false, Message: "integration is active"}, nil
	})
	backendtest.Handle(env.backend, integrationv1.IntegrationService_ChangeStatus_FullMethodName, func(context.Context, *integrationv1.IntegrationChangeStatusReq) (*integrationv1.IntegrationCommandRes, error) {
		return nil, status.Error(codes.Unavailable, "integration service down")
	})

	body := `{"name":"postback","offerId":11,"publisherId":7,"url":"https://tracker.example/pb","method":"get"}`
	rec := env.do(t, http.MethodPost, "/api/v1/integrations", "ADMIN", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if created.GetMethod() != "GET" || created.GetName() != "postback" {
		t.Fatalf("backend received %v", created)
	}
	if got := decode[service.CommandResult](t, rec); got.ID != 12 {
		t.Fatalf("result = %+v", got)
	}

	rec = env.do(t, http.MethodPost, "/api/v1/integrations", "ADMIN", `{"name":"","url":"not a url","method":"GET"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid create status = %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/api/v1/integrations/12", "ADMIN", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("rejected delete status = %d, want 400", rec.Code)
	}
	if got := decode[map[string]string](t, rec); got["error"] != "integration is active" {
		t.Fatalf("rejected delete body = %v", got)
	}

	rec = env.do(t, http.MethodPatch, "/api/v1/integrations/12/status?status=ACTIVE", "ADMIN", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("failed change status = %d, want 500", rec.Code)
	}

	rec = env.do(t, http.MethodPatch, "/api/v1/integrations/12/status?status=ALL", "ADMIN", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=ALL = %d, want 400", rec.Code)
	}
}

func TestUtmPageSizeCeiling(t *testing.T) {
	env := newTestEnv(t)
	var received *statisticv1.UtmStatisticReq
	backendtest.Handle(env.backend, statisticv1.StatisticService_GetUtmStatistic_FullMethodName, func(_ context.Context, in *statisticv1.UtmStatisticReq) (*statisticv1.UtmStatisticRes, error) {
		received = in
		return &statisticv1.UtmStatisticRes{Pageable: &commonv1.PageableRes{Size: in.GetPageable().GetSize()}}, nil
	})

	rec := env.do(t, http.MethodGet, "/api/v1/statistics/utm?dimension=utm_campaign&size=1000&dateFrom=2026-03-01&dateTo=2026-03-31", "ADMIN", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if received.GetPageable().GetSize() != 500 || received.GetPageable().GetSort() != "clicks,desc" {
		t.Fatalf("pageable = %v", received.GetPageable())
	}
	if received.GetDimension() != "utm_campaign" || received.GetDateFrom() != "2026-03-01" || received.GetDateTo() != "2026-03-31" {
		t.Fatalf("backend received %v", received)
	}
}

func TestDailyStatisticTotalIsUnpaged(t *testing.T) {
	env := newTestEnv(t)
	var pageable *commonv1.PageableReq
	backendtest.Handle(env.backend, statisticv1.StatisticService_GetAllDailyStatisticTotal_FullMethodName, func(_ context.Context, in *statisticv1.DailyClickStatisticsFilter) (*statisticv1.DailyClickStatisticTotalRes, error) {
		pageable = in.GetPageable()
		return &statisticv1.DailyClickStatisticTotalRes{Clicks: 8}, nil
	})

	rec := env.do(t, http.MethodGet, "/api/v1/statistics/daily/total?page=3&size=10", "PUBLISHER", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if pageable != nil {
		t.Fatalf("pageable = %v, want none", pageable)
	}
}
