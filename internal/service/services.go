package service

import (
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/session"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// Services aggregates the application's service layer.
type Services struct {
	Tokens TokenService
	Bans   BanGuard
	Login  LoginService
	Users  UserService
}

// NewServices wires the service layer on top of the repositories and the
// session trust manager.
func NewServices(storages *store.Storages, trust session.TrustManager, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := secret.NewHasher(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	clock := NewClock()
	source := secret.NewTokenSource()

	tokens := NewTokenService(storages.Tokens, source, clock, cfg.App, logger)
	bans := NewBanGuard(storages.Failures, clock, cfg.App, logger)

	login, err := NewLoginService(storages.Users, hasher, tokens, bans, trust, cfg.App, cfg.Session, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating login service: %w", err)
	}

	return &Services{
		Tokens: tokens,
		Bans:   bans,
		Login:  login,
		Users:  NewUserService(storages.Users, hasher, tokens, cfg.App, logger),
	}, nil
}
