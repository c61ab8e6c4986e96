package middleware

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"ipay4u/config"
	"ipay4u/internal/delivery/api/response"
	deliverycontext "ipay4u/internal/delivery/context"
	"ipay4u/internal/domain/constants"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Registration gate headers.
const (
	HeaderRegistrationSecret = "X-Registration-Secret"
	HeaderDeviceFingerprint  = "X-Device-Fingerprint"
)

// RegistrationGateParams holds dependencies for RegistrationGate, injected by Fx.
type RegistrationGateParams struct {
	fx.In

	Config  *config.Config
	Hasher  service.SecretHasher
	Metrics service.MetricsRecorder
	Logger  *slog.Logger
}

// RegistrationGate is the coarse admission check in front of /register.
type RegistrationGate struct {
	cfg     config.RegistrationConfig
	hasher  service.SecretHasher
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewRegistrationGate is the constructor for RegistrationGate.
func NewRegistrationGate(params RegistrationGateParams) *RegistrationGate {
	return &RegistrationGate{
		cfg:     params.Config.Auth.Registration,
		hasher:  params.Hasher,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// Check admits the request when the configured mode is satisfied.
func (g *RegistrationGate) Check(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !g.admit(c) {
			g.metrics.RecordRegistration(domainerrors.ErrRegistrationForbidden.ErrorCode())
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger).Warn("Registration rejected by gate",
				slog.String("mode", g.cfg.Mode),
				slog.String("remote_ip", c.RealIP()),
			)

			return domainerrors.ErrRegistrationForbidden
		}

		return next(c)
	}
}

func (g *RegistrationGate) admit(c echo.Context) bool {
	header := c.Request().Header

	switch g.cfg.Mode {
	case constants.RegistrationModeFingerprint:
		return strings.TrimSpace(header.Get(HeaderDeviceFingerprint)) != ""
	case constants.RegistrationModeSecret:
		presented := header.Get(HeaderRegistrationSecret)
		if presented == "" {
			return false
		}
		if g.cfg.SecretHash != "" {
			return g.hasher.Check(presented, g.cfg.SecretHash)
		}

		return subtle.ConstantTimeCompare([]byte(presented), []byte(g.cfg.Secret)) == 1
	default:
		return false
	}
}

// RateLimit returns a per-client-IP token bucket limiter, or a pass-through
// when no rate is configured.
func (g *RegistrationGate) RateLimit() echo.MiddlewareFunc {
	limit := g.cfg.RateLimit
	if limit.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit.RequestsPerSecond),
		Burst:     limit.Burst,
		ExpiresIn: limit.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Forbidden(c, "REGISTRATION_FORBIDDEN", "Client could not be identified")
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			g.metrics.RecordRegistration("RATE_LIMITED")

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many registration attempts")
		},
	})
}
