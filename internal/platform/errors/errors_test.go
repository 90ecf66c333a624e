package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDescribeStatusWithErrorInfo(t *testing.T) {
	st, err := status.New(codes.NotFound, "integration 9 not found").WithDetails(&errdetails.ErrorInfo{
		Reason: "INTEGRATION_NOT_FOUND",
		Domain: "integration.bamboolead",
	})
	if err != nil {
		t.Fatalf("attach details: %v", err)
	}

	got := Describe(st.Err())
	if got.GRPCCode != codes.NotFound {
		t.Fatalf("grpc code = %v, want %v", got.GRPCCode, codes.NotFound)
	}
	if got.Code != CodeNotFound {
		t.Fatalf("code = %v, want %v", got.Code, CodeNotFound)
	}
	if got.Message != "integration 9 not found" {
		t.Fatalf("message = %q", got.Message)
	}
	if got.Reason != "INTEGRATION_NOT_FOUND" || got.Domain != "integration.bamboolead" {
		t.Fatalf("reason/domain = %q/%q", got.Reason, got.Domain)
	}
}

func TestDescribePlainError(t *testing.T) {
	got := Describe(fmt.Errorf("dial tcp: refused"))
	if got.GRPCCode != codes.Unknown {
		t.Fatalf("grpc code = %v, want %v", got.GRPCCode, codes.Unknown)
	}
	if got.Message != "dial tcp: refused" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestDescribeGatewayError(t *testing.T) {
	err := fmt.Errorf("list: %w", New(CodeInvalidArgument, "offerId must be positive"))
	got := Describe(err)
	if got.Code != CodeInvalidArgument || got.Message != "offerId must be positive" {
		t.Fatalf("describe = %+v", got)
	}
}

func TestWrapKeepsCauseOutOfMessage(t *testing.T) {
	cause := stderrors.New("payout: can't convert one dollar to decimal")
	err := fmt.Errorf("get click: %w", Wrap(CodeBackendFailure, "decode click transaction", cause))

	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	got := Describe(err)
	if got.Code != CodeBackendFailure || got.Message != "decode click transaction" {
		t.Fatalf("describe = %+v", got)
	}
}

func TestFromGRPCCode(t *testing.T) {
	tests := map[codes.Code]Code{
		codes.OK:                 "",
		codes.InvalidArgument:    CodeInvalidArgument,
		codes.FailedPrecondition: CodeInvalidArgument,
		codes.NotFound:           CodeNotFound,
		codes.Unauthenticated:    CodeUnauthenticated,
		codes.Unavailable:        CodeBackendUnavailable,
		codes.DeadlineExceeded:   CodeBackendUnavailable,
		codes.Internal:           CodeBackendFailure,
	}
	for in, want := range tests {
		if got := FromGRPCCode(in); got != want {
			t.Fatalf("FromGRPCCode(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSurfaceResolve(t *testing.T) {
	backendErr := status.Error(codes.NotFound, "not found")

	client := SurfaceClientMessage.Resolve(backendErr)
	if client.Status != http.StatusBadRequest || client.Body != "not found" {
		t.Fatalf("client outcome = %+v", client)
	}

	server := SurfaceServerError.Resolve(backendErr)
	if server.Status != http.StatusInternalServerError {
		t.Fatalf("server status = %d", server.Status)
	}
	if server.Body == "not found" {
		t.Fatal("server surface must not expose backend message")
	}
	if server.Failure.Message != "not found" {
		t.Fatalf("failure message = %q", server.Failure.Message)
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeInvalidArgument: http.StatusBadRequest,
		CodeCommandRejected: http.StatusBadRequest,
		CodeUnauthenticated: http.StatusUnauthorized,
		CodeNotFound:        http.StatusNotFound,
		CodeBackendFailure:  http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("%s status = %d, want %d", code, got, want)
		}
	}
}
