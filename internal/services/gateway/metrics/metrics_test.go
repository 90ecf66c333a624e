package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/v1/integrations", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/integrations", http.StatusOK, 30*time.Millisecond)

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/integrations", "200"))
	if got != 2 {
		t.Fatalf("requests = %v, want 2", got)
	}
}

func TestUnaryClientInterceptorCountsCodes(t *testing.T) {
	m := New()
	intercept := m.UnaryClientInterceptor()
	failing := func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
		return status.Error(codes.NotFound, "not found")
	}
	ok := func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
		return nil
	}

	const method = "/bamboolead.integration.IntegrationService/GetIntegration"
	if err := intercept(context.Background(), method, nil, nil, nil, failing); status.Code(err) != codes.NotFound {
		t.Fatalf("err = %v, want not found passed through", err)
	}
	if err := intercept(context.Background(), method, nil, nil, nil, ok); err != nil {
		t.Fatalf("err = %v", err)
	}

	if got := testutil.ToFloat64(m.backendCalls.WithLabelValues(method, "NotFound")); got != 1 {
		t.Fatalf("not found calls = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.backendCalls.WithLabelValues(method, "OK")); got != 1 {
		t.Fatalf("ok calls = %v, want 1", got)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/healthz", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bamboolead_gateway_http_requests_total") {
		t.Fatal("expected http request counter in exposition")
	}
}
