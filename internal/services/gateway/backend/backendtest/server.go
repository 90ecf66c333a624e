// Package backendtest runs an in-memory gRPC server that answers backend
// methods with the default protobuf codec, for tests that need real gRPC
// round-trips.
package backendtest

import (
	"context"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Target is the dial target served by every Server.
const Target = "passthrough:///backendtest"

const bufferSize = 1 << 20

type handler func(stream grpc.ServerStream) (any, error)

// Server answers registered unary methods and reports SERVING health.
type Server struct {
	listener *bufconn.Listener
	grpc     *grpc.Server
	health   *health.Server

	mu       sync.RWMutex
	handlers map[string]handler
	calls    map[string]int
}

// Start serves until the test ends.
func Start(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		listener: bufconn.Listen(bufferSize),
		health:   health.NewServer(),
		handlers: make(map[string]handler),
		calls:    make(map[string]int),
	}
	s.grpc = grpc.NewServer(grpc.UnknownServiceHandler(s.dispatch))
	grpc_health_v1.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpc.Serve(s.listener)
	}()
	t.Cleanup(func() {
		s.grpc.Stop()
		_ = s.listener.Close()
		<-serveErr
	})
	return s
}

// Handle registers fn as the implementation of the full method name. Req and
// Resp are generated message types, so *Req and *Resp are proto messages.
func Handle[Req, Resp any](s *Server, method string, fn func(context.Context, *Req) (*Resp, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = func(stream grpc.ServerStream) (any, error) {
		req := new(Req)
		if err := stream.RecvMsg(req); err != nil {
			return nil, err
		}
		return fn(stream.Context(), req)
	}
}

// Calls returns how many times method was invoked.
func (s *Server) Calls(method string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[method]
}

// SetServing flips the reported health status.
func (s *Server) SetServing(serving bool) {
	next := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		next = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", next)
}

// DialOption routes connections for Target to this server.
func (s *Server) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return s.listener.DialContext(ctx)
	})
}

// Conn returns a client connection closed when the test ends.
func (s *Server) Conn(t testing.TB) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(Target,
		s.DialOption(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial backendtest server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *Server) dispatch(_ any, stream grpc.ServerStream) error {
	method, ok := grpc.MethodFromServerStream(stream)
	if !ok {
		return status.Error(codes.Internal, "method name unavailable")
	}

	s.mu.Lock()
	h, registered := s.handlers[method]
	s.calls[method]++
	s.mu.Unlock()
	if !registered {
		return status.Errorf(codes.Unimplemented, "method %s is not registered", method)
	}

	resp, err := h(stream)
	if err != nil {
		return err
	}
	return stream.SendMsg(resp)
}
