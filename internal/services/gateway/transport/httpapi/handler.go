// Package httpapi exposes the gateway operations as a JSON HTTP API.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/metrics"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config wires the handler to its services.
type Config struct {
	JWTSecret      []byte
	RequestTimeout time.Duration
	Logger         *zap.Logger
	Metrics        *metrics.Metrics

	Clicks       *service.ClickService
	Integrations *service.IntegrationService
	Statistics   *service.StatisticService
}

// Handler serves the gateway HTTP API.
type Handler struct {
	clicks       *service.ClickService
	integrations *service.IntegrationService
	statistics   *service.StatisticService

	logger   *zap.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler builds the router.
func NewHandler(cfg Config) (*Handler, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.Clicks == nil || cfg.Integrations == nil || cfg.Statistics == nil {
		return nil, errors.New("click, integration and statistic services are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		clicks:       cfg.Clicks,
		integrations: cfg.Integrations,
		statistics:   cfg.Statistics,
		logger:       logger.Named("httpapi"),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(h.logger, cfg.Metrics))
	r.Use(recoverPanic(h.logger))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeGatewayError(w, apperrors.New(apperrors.CodeNotFound, "not found"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(authenticate(cfg.JWTSecret))
		if cfg.RequestTimeout > 0 {
			api.Use(middleware.Timeout(cfg.RequestTimeout))
		}

		api.Get("/click-transactions", h.listClickTransactions)
		api.Get("/click-transactions/{id}", h.getClickTransaction)

		api.Route("/integrations", func(ir chi.Router) {
			ir.Get("/", h.listIntegrations)
			ir.Post("/", h.createIntegration)
			ir.Get("/placeholders", h.getPlaceholders)
			ir.Get("/{id}", h.getIntegration)
			ir.Put("/{id}", h.updateIntegration)
			ir.Patch("/{id}/status", h.changeIntegrationStatus)
			ir.Delete("/{id}", h.deleteIntegration)
		})

		api.Route("/statistics", func(sr chi.Router) {
			sr.Get("/global", h.getGlobalStatistic)
			sr.Get("/clicks-per-day", h.getClicksPerDay)
			sr.Get("/daily", h.listDailyStatistics)
			sr.Get("/daily/total", h.getDailyStatisticTotal)
			sr.Get("/utm", h.listUtmStatistics)
		})
	})

	h.router = r
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}
