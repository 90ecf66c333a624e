package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthCheckTimeout   = time.Second
	initialHealthBackoff = 200 * time.Millisecond
	maxHealthBackoff     = time.Second
)

// WaitForHealth polls the health service on conn until service reports
// SERVING or ctx ends. An empty service checks the whole server. Each
// unsuccessful check is logged at debug level.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logger *zap.Logger) error {
	if conn == nil {
		return errors.New("backend connection is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := initialHealthBackoff
	for attempt := 1; ; attempt++ {
		status, err := checkHealth(ctx, client, service)
		if err == nil && status == grpc_health_v1.HealthCheckResponse_SERVING {
			logger.Debug("backend serving", zap.String("target", conn.Target()), zap.Int("attempts", attempt))
			return nil
		}
		logger.Debug("backend not serving yet",
			zap.String("target", conn.Target()),
			zap.Stringer("status", status),
			zap.Error(err),
			zap.Duration("retry_in", backoff),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			if err != nil {
				return fmt.Errorf("wait for health after %d checks: %w (last check: %v)", attempt, ctx.Err(), err)
			}
			return fmt.Errorf("wait for health after %d checks: %w (last status %s)", attempt, ctx.Err(), status)
		case <-timer.C:
		}
		backoff = min(backoff*2, maxHealthBackoff)
	}
}

func checkHealth(ctx context.Context, client grpc_health_v1.HealthClient, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
