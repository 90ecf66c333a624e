package httpapi

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	apperrors "github.com/gleb-syrov/bamboolead/internal/platform/errors"
	"github.com/gleb-syrov/bamboolead/internal/platform/requestctx"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/metrics"
	"github.com/gleb-syrov/bamboolead/internal/services/gateway/role"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims are the bearer token claims the gateway reads.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// caller is filled in by authenticate and read back by the access log,
// which wraps it.
type caller struct {
	role    role.Role
	subject string
}

type callerContextKey struct{}

func callerFromContext(ctx context.Context) *caller {
	c, _ := ctx.Value(callerContextKey{}).(*caller)
	return c
}

// requestID injects and echoes a request id for correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestctx.EnsureRequestID(r.Header.Get(requestctx.RequestIDHeader))
		w.Header().Set(requestctx.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), id)))
	})
}

func requestIDOf(r *http.Request) string {
	return requestctx.RequestIDFromContext(r.Context())
}

// recoverPanic converts panics into HTTP 500 responses.
func recoverPanic(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", requestIDOf(r)),
						zap.Any("panic", recovered),
						zap.String("stack", strings.TrimSpace(string(debug.Stack()))),
					)
					writeJSONError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog logs and measures every request once it completes.
func accessLog(logger *zap.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			c := &caller{}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), callerContextKey{}, c)))

			elapsed := time.Since(start)
			route := routePattern(r)
			if m != nil {
				m.ObserveHTTP(r.Method, route, rec.status, elapsed)
			}
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", rec.status),
				zap.Duration("duration", elapsed),
				zap.String("request_id", requestIDOf(r)),
				zap.String("role", string(c.role)),
				zap.String("subject", c.subject),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// authenticate requires an HS256 bearer token with a known role claim and
// stores the role in the request context.
func authenticate(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeGatewayError(w, apperrors.New(apperrors.CodeUnauthenticated, "missing bearer token"))
				return
			}
			claims := &Claims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				writeGatewayError(w, apperrors.New(apperrors.CodeUnauthenticated, "invalid bearer token"))
				return
			}
			callerRole, err := role.Parse(claims.Role)
			if err != nil {
				writeGatewayError(w, apperrors.New(apperrors.CodeUnauthenticated, "invalid role claim"))
				return
			}

			if c := callerFromContext(r.Context()); c != nil {
				c.role = callerRole
				c.subject = claims.Subject
			}
			next.ServeHTTP(w, r.WithContext(role.WithRole(r.Context(), callerRole)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
