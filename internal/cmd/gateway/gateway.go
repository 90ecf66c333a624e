// Package gateway parses gateway flags and launches the service.
package gateway

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/gleb-syrov/bamboolead/internal/platform/cmd"
	"github.com/gleb-syrov/bamboolead/internal/platform/discovery"
	"github.com/gleb-syrov/bamboolead/internal/platform/timeouts"
	server "github.com/gleb-syrov/bamboolead/internal/services/gateway/app"
	"go.uber.org/zap"
)

// EnvPrefix follows the platform prefix for every gateway variable.
const EnvPrefix = "GATEWAY_"

// Config holds gateway command configuration.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":9090"`

	ClickAddr       string `env:"CLICK_ADDR"`
	IntegrationAddr string `env:"INTEGRATION_ADDR"`
	StatisticAddr   string `env:"STATISTIC_ADDR"`
	OfferAddr       string `env:"OFFER_ADDR"`
	UserAddr        string `env:"USER_ADDR"`

	DialTimeout    time.Duration `env:"DIAL_TIMEOUT" envDefault:"2s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	JWTSecret      string        `env:"JWT_SECRET"`

	Log entrypoint.LogConfig
}

// ParseConfig parses environment and flags into Config. Backend addresses
// left empty follow the in-network discovery convention.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg, EnvPrefix); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The gateway HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "The statistic gRPC listen address; empty disables it")
	fs.StringVar(&cfg.ClickAddr, "click-addr", cfg.ClickAddr, "The click service gRPC address")
	fs.StringVar(&cfg.IntegrationAddr, "integration-addr", cfg.IntegrationAddr, "The integration service gRPC address")
	fs.StringVar(&cfg.StatisticAddr, "statistic-addr", cfg.StatisticAddr, "The statistic service gRPC address")
	fs.StringVar(&cfg.OfferAddr, "offer-addr", cfg.OfferAddr, "The offer lookup service gRPC address")
	fs.StringVar(&cfg.UserAddr, "user-addr", cfg.UserAddr, "The user lookup service gRPC address")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "Timeout for dialing each backend and waiting for SERVING")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Deadline per API request; 0 disables")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (json, console)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.ClickAddr = discovery.OrDefaultGRPCAddr(cfg.ClickAddr, discovery.ServiceClick)
	cfg.IntegrationAddr = discovery.OrDefaultGRPCAddr(cfg.IntegrationAddr, discovery.ServiceIntegration)
	cfg.StatisticAddr = discovery.OrDefaultGRPCAddr(cfg.StatisticAddr, discovery.ServiceStatistic)
	cfg.OfferAddr = discovery.OrDefaultGRPCAddr(cfg.OfferAddr, discovery.ServiceOffer)
	cfg.UserAddr = discovery.OrDefaultGRPCAddr(cfg.UserAddr, discovery.ServiceUser)
	return cfg, nil
}

// Run starts the gateway.
func Run(ctx context.Context, cfg Config) error {
	logger, err := entrypoint.NewLogger(entrypoint.ServiceGateway, cfg.Log)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGateway, entrypoint.RunOptions{
		ShutdownTimeout: timeouts.Shutdown,
		Logger:          logger,
	}, func(ctx context.Context) error {
		logger.Info("starting gateway", zap.String("http_addr", cfg.HTTPAddr), zap.String("grpc_addr", cfg.GRPCAddr))
		return server.Run(ctx, cfg.serverConfig(logger))
	})
}

func (c Config) serverConfig(logger *zap.Logger) server.Config {
	return server.Config{
		HTTPAddr:        c.HTTPAddr,
		GRPCAddr:        c.GRPCAddr,
		ClickAddr:       c.ClickAddr,
		IntegrationAddr: c.IntegrationAddr,
		StatisticAddr:   c.StatisticAddr,
		OfferAddr:       c.OfferAddr,
		UserAddr:        c.UserAddr,
		DialTimeout:     c.DialTimeout,
		RequestTimeout:  c.RequestTimeout,
		JWTSecret:       c.JWTSecret,
		Logger:          logger,
	}
}
