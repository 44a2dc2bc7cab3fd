package http

import (
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
)

// Handler carries the dependencies of every HTTP route: the service layer,
// the session server the session middleware opens sessions against, and the
// trust manager used to read session identity.
type Handler struct {
	services *service.Services
	sessions session.Server
	trust    session.TrustManager

	sessionCookieName string
	sessionTTL        time.Duration
	version           string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, sessions session.Server, trust session.TrustManager, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		sessions:          sessions,
		trust:             trust,
		sessionCookieName: cfg.Session.CookieName,
		sessionTTL:        cfg.Session.TTL,
		version:           cfg.App.Version,
		logger:            logger,
	}
}
