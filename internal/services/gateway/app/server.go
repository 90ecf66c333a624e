package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	statisticv1 "github.com/gleb-syrov/bamboolead/api/gen/go/statistic/v1"
	platformgrpc "github.com/gleb-syrov/bamboolead/internal/platform/grpc"
	"github.com/gleb-syrov/bamboolead/internal/platform/timeouts"
	statisticservice "github.com/gleb-syrov/bamboolead/internal/services/gateway/api/grpc/statistic"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/backend"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/metrics"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/names"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/service"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/transport/httpapi"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config holds everything the gateway needs to start.
type Config struct {
	HTTPAddr string
	// GRPCAddr serves the statistic gRPC API. Empty disables it.
	GRPCAddr string

	ClickAddr       string
	IntegrationAddr string
	StatisticAddr   string
	OfferAddr       string
	UserAddr        string

	DialTimeout    time.Duration
	RequestTimeout time.Duration
	JWTSecret      string

	Logger *zap.Logger
	// Dialer overrides how backend connections are created.
	Dialer platformgrpc.Dialer
	// DialOptions are appended to the default client dial options.
	DialOptions []grpc.DialOption
}

func (c Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("jwt secret is required")
	}
	for name, addr := range map[string]string{
		"click":       c.ClickAddr,
		"integration": c.IntegrationAddr,
		"statistic":   c.StatisticAddr,
		"offer":       c.OfferAddr,
		"user":        c.UserAddr,
	} {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("%s backend address is required", name)
		}
	}
	return nil
}

// Server hosts the gateway HTTP API and the statistic gRPC API.
type Server struct {
	listener     net.Listener
	httpServer   *http.Server
	grpcListener net.Listener
	grpcServer   *grpc.Server
	health       *health.Server
	conns        map[string]*grpc.ClientConn
	logger       *zap.Logger
}

// New dials all backends and binds the HTTP listener. Connections are
// shared between backends configured with the same address.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = timeouts.GRPCDial
	}

	m := metrics.New()
	dialCfg := platformgrpc.DialConfig{
		Dialer:  cfg.Dialer,
		Timeout: dialTimeout,
		Logger:  logger.Named("dial"),
		Options: append(platformgrpc.ClientDialOptions(
			backend.CallerMetadataUnaryClientInterceptor(),
			m.UnaryClientInterceptor(),
		), cfg.DialOptions...),
	}

	s := &Server{conns: make(map[string]*grpc.ClientConn), logger: logger}
	connFor := func(b platformgrpc.Backend) (*grpc.ClientConn, error) {
		if conn, ok := s.conns[b.Addr]; ok {
			return conn, nil
		}
		conn, err := platformgrpc.DialBackend(ctx, b, dialCfg)
		if err != nil {
			return nil, err
		}
		s.conns[b.Addr] = conn
		return conn, nil
	}

	var clickConn, integrationConn, statisticConn, offerConn, userConn *grpc.ClientConn
	for _, target := range []struct {
		backend platformgrpc.Backend
		conn    **grpc.ClientConn
	}{
		{platformgrpc.Backend{Name: "click", Addr: cfg.ClickAddr}, &clickConn},
		{platformgrpc.Backend{Name: "integration", Addr: cfg.IntegrationAddr}, &integrationConn},
		{platformgrpc.Backend{Name: "statistic", Addr: cfg.StatisticAddr}, &statisticConn},
		{platformgrpc.Backend{Name: "offer", Addr: cfg.OfferAddr}, &offerConn},
		{platformgrpc.Backend{Name: "user", Addr: cfg.UserAddr}, &userConn},
	} {
		conn, err := connFor(target.backend)
		if err != nil {
			s.closeConns()
			return nil, err
		}
		*target.conn = conn
	}

	statisticClient := backend.NewStatisticClient(statisticConn)
	resolver := names.NewResolver(backend.NewOfferLookupClient(offerConn), backend.NewPublisherLookupClient(userConn))
	requestTimeout := cfg.RequestTimeout
	if requestTimeout < 0 {
		requestTimeout = 0
	}
	handler, err := httpapi.NewHandler(httpapi.Config{
		JWTSecret:      []byte(cfg.JWTSecret),
		RequestTimeout: requestTimeout,
		Logger:         logger,
		Metrics:        m,
		Clicks:         service.NewClickService(backend.NewClickClient(clickConn), resolver),
		Integrations:   service.NewIntegrationService(backend.NewIntegrationClient(integrationConn), resolver),
		Statistics:     service.NewStatisticService(statisticClient, resolver),
	})
	if err != nil {
		s.closeConns()
		return nil, err
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		s.closeConns()
		return nil, fmt.Errorf("listen on http addr %s: %w", cfg.HTTPAddr, err)
	}
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}

	if strings.TrimSpace(cfg.GRPCAddr) != "" {
		grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			_ = listener.Close()
			s.closeConns()
			return nil, fmt.Errorf("listen on grpc addr %s: %w", cfg.GRPCAddr, err)
		}
		s.grpcListener = grpcListener
		s.grpcServer = grpc.NewServer(
			grpc.StatsHandler(otelgrpc.NewServerHandler()),
			grpc.ChainUnaryInterceptor(statisticservice.CallerContextUnaryServerInterceptor()),
		)
		s.health = health.NewServer()
		statisticv1.RegisterStatisticServiceServer(s.grpcServer, statisticservice.NewService(statisticClient.RPC()))
		grpc_health_v1.RegisterHealthServer(s.grpcServer, s.health)
		s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		s.health.SetServingStatus(statisticv1.StatisticService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	}
	return s, nil
}

// Addr returns the HTTP listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// GRPCAddr returns the gRPC listener address, or "" when gRPC is disabled.
func (s *Server) GRPCAddr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// Run creates and serves a gateway until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve blocks until a server fails or ctx ends, then shuts both servers
// down gracefully and closes backend connections.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeConns()

	s.logger.Info("gateway HTTP server listening", zap.String("addr", s.Addr()))
	httpErr := make(chan error, 1)
	go func() {
		httpErr <- s.httpServer.Serve(s.listener)
	}()

	serveErr := make(chan error, 1)
	if s.grpcServer != nil {
		s.logger.Info("gateway gRPC server listening", zap.String("addr", s.GRPCAddr()))
		go func() {
			serveErr <- s.grpcServer.Serve(s.grpcListener)
		}()
	}

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
	waitGRPC := func() error {
		if s.grpcServer == nil {
			return nil
		}
		return handleErr(<-serveErr)
	}
	shutdownGRPC := func() {
		if s.grpcServer == nil {
			return
		}
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
	}
	shutdownHTTP := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP: %w", err)
		}
		if err := <-httpErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	}

	select {
	case <-ctx.Done():
		shutdownGRPC()
		httpShutdownErr := shutdownHTTP()
		if err := waitGRPC(); err != nil {
			return err
		}
		return httpShutdownErr
	case err := <-serveErr:
		if shutdownErr := shutdownHTTP(); shutdownErr != nil {
			s.logger.Warn("shutdown HTTP after gRPC stopped", zap.Error(shutdownErr))
		}
		return handleErr(err)
	case err := <-httpErr:
		shutdownGRPC()
		if grpcErr := waitGRPC(); grpcErr != nil {
			return grpcErr
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	}
}

func (s *Server) closeConns() {
	for addr, conn := range s.conns {
		if err := conn.Close(); err != nil {
			s.logger.Warn("close backend connection", zap.String("addr", addr), zap.Error(err))
		}
		delete(s.conns, addr)
	}
}
