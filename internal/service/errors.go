package service

import "errors"

var (
	// ErrInvalidDataProvided rejects empty or malformed input before any
	// storage or hashing work happens.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotAuthenticated is returned by operations that require an
	// established session identity when the session carries none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
