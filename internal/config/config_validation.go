// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by [StructuredConfig.validate] to fields that may be left
// unset without being a configuration error.
const (
	DefaultSessionCookieName   = "gk_session"
	DefaultAutologinCookieName = "gk_autologin"
	DefaultDriver              = "pgx"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in the
// defaults for optional cosmetic fields (cookie names, driver).
//
// Security-relevant fields have no defaults: a missing pepper or DSN is a
// hard startup error.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Pepper == "" {
		return ErrPepperNotConfigured
	}

	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.MaxTries < 0 {
		return fmt.Errorf("%w: max tries must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.App.RelevanceWindow < 0 || cfg.App.BanDuration < 0 ||
		cfg.App.ActivationTTL < 0 || cfg.App.AutologinTTL < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultSessionCookieName
	}
	if cfg.Session.AutologinCookieName == "" {
		cfg.Session.AutologinCookieName = DefaultAutologinCookieName
	}

	return nil
}
