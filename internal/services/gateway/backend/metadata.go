package backend

import (
	"context"

	"github.com/gleb-syrov/bamboolead/internal/platform/requestctx"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// RequestIDHeader carries the gateway request id to backends.
	RequestIDHeader = "x-request-id"
	// RoleHeader carries the caller role to backends.
	RoleHeader = "x-bamboolead-role"
)

// WithCallerMetadata returns a context whose outgoing gRPC metadata names the
// request id and caller role found in ctx.
func WithCallerMetadata(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	pairs := []string{RoleHeader, string(role.FromContext(ctx))}
	if requestID := requestctx.RequestIDFromContext(ctx); requestID != "" {
		pairs = append(pairs, RequestIDHeader, requestID)
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// CallerMetadataUnaryClientInterceptor appends caller metadata to unary calls.
func CallerMetadataUnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req any,
		reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(WithCallerMetadata(ctx), method, req, reply, cc, opts...)
	}
}
