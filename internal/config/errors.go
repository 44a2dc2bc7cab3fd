package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrPepperNotConfigured indicates that APP_PEPPER is empty. The
	// application refuses to start rather than fall back to a built-in
	// default pepper.
	ErrPepperNotConfigured = errors.New("password pepper is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unknown driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs indicates invalid authentication-policy settings
	// (for example, a bcrypt cost outside the supported range or a
	// negative ban window).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
