package requestctx

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDFromContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromContext(ctx); got != "req-42" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "req-42")
	}
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromContextNil(t *testing.T) {
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithRequestIDNilContext(t *testing.T) {
	ctx := WithRequestID(nil, "req-99")
	if got := RequestIDFromContext(ctx); got != "req-99" {
		t.Fatalf("RequestIDFromContext = %q, want %q", got, "req-99")
	}
}

func TestEnsureRequestID(t *testing.T) {
	if got := EnsureRequestID(" upstream-1 "); got != "upstream-1" {
		t.Fatalf("EnsureRequestID kept = %q", got)
	}
	generated := EnsureRequestID("")
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", generated, err)
	}
	if got := EnsureRequestID(strings.Repeat("x", 200)); len(got) != 36 {
		t.Fatalf("oversized id should be replaced, got %q", got)
	}
}
