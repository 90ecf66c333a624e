// Package grpc connects the gateway to its backend services. A backend is
// usable only once it reports SERVING on the standard health service.
package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dialer creates a client connection. Nil means grpc.NewClient, which
// connects lazily and leaves readiness to the health wait.
type Dialer func(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

func newClient(_ context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	return gogrpc.NewClient(addr, opts...)
}

// Backend names an upstream service and the address it listens on.
type Backend struct {
	Name string
	Addr string
}

// DialConfig controls DialBackend.
type DialConfig struct {
	Dialer Dialer
	// Timeout bounds connecting and the health wait together. Zero leaves
	// only the caller's context.
	Timeout time.Duration
	Logger  *zap.Logger
	Options []gogrpc.DialOption
}

// DialStage is the step at which a backend dial failed.
type DialStage string

const (
	DialStageConnect DialStage = "connect"
	DialStageHealth  DialStage = "health"
)

// DialError reports the backend that could not be reached and why.
type DialError struct {
	Backend Backend
	Stage   DialStage
	Err     error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("%s backend at %s failed %s: %v", e.Backend.Name, e.Backend.Addr, e.Stage, e.Err)
}

func (e *DialError) Unwrap() error {
	return e.Err
}

// ClientDialOptions returns the dial options shared by every backend
// connection: plaintext transport, otel client stats and the given unary
// interceptors chained in order.
func ClientDialOptions(interceptors ...gogrpc.UnaryClientInterceptor) []gogrpc.DialOption {
	opts := []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
	if len(interceptors) > 0 {
		opts = append(opts, gogrpc.WithChainUnaryInterceptor(interceptors...))
	}
	return opts
}

// DialBackend connects to b and blocks until it reports SERVING. The
// connection is closed again when the health wait fails.
func DialBackend(ctx context.Context, b Backend, cfg DialConfig) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dial := cfg.Dialer
	if dial == nil {
		dial = newClient
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	conn, err := dial(ctx, b.Addr, cfg.Options...)
	if err != nil {
		return nil, &DialError{Backend: b, Stage: DialStageConnect, Err: err}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := WaitForHealth(ctx, conn, "", logger.With(zap.String("backend", b.Name))); err != nil {
		_ = conn.Close()
		return nil, &DialError{Backend: b, Stage: DialStageHealth, Err: err}
	}
	return conn, nil
}
