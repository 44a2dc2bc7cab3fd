package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	users  store.UserRepository
	hasher secret.Hasher
	tokens TokenService

	activationRequired bool

	logger *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(users store.UserRepository, hasher secret.Hasher, tokens TokenService, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		users:              users,
		hasher:             hasher,
		tokens:             tokens,
		activationRequired: cfg.ActivationRequired,
		logger:             logger,
	}
}

// CreateUser implements [UserService].
//
// Delivery of the activation key (mail or otherwise) is the caller's
// concern; this is the only place the key exists in cleartext.
func (u *userService) CreateUser(ctx context.Context, login, password string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, "", ErrInvalidDataProvided
	}

	passwordHash, err := u.hasher.Hash(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("error hashing password: %w", err)
	}

	state := models.UserStateActive
	if u.activationRequired {
		state = models.UserStatePendingActivation
	}

	created, err := u.users.CreateUser(ctx, models.User{
		Login:        login,
		PasswordHash: passwordHash,
		State:        state,
	})
	if err != nil {
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	if !u.activationRequired {
		return created, "", nil
	}

	selector, tokenSecret, err := u.tokens.Issue(ctx, created.UserID, models.TokenKindActivation)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Int64("user_id", created.UserID).Msg("issuing activation token failed")
		return models.User{}, "", fmt.Errorf("error issuing activation token: %w", err)
	}

	return created, secret.EncodeBearerKey(selector, tokenSecret), nil
}

// ActivateUser implements [UserService].
func (u *userService) ActivateUser(ctx context.Context, key string) error {
	selector, tokenSecret, err := secret.ParseBearerKey(key)
	if err != nil {
		return err
	}

	userID, err := u.tokens.Consume(ctx, models.TokenKindActivation, selector, tokenSecret)
	if err != nil {
		return err
	}

	if err := u.users.MarkActive(ctx, userID); err != nil {
		return fmt.Errorf("error activating user: %w", err)
	}

	return nil
}

// DenyActivation implements [UserService]. The pending account is removed
// together with the consumed token.
func (u *userService) DenyActivation(ctx context.Context, key string) error {
	selector, tokenSecret, err := secret.ParseBearerKey(key)
	if err != nil {
		return err
	}

	userID, err := u.tokens.Consume(ctx, models.TokenKindActivation, selector, tokenSecret)
	if err != nil {
		return err
	}

	if err := u.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting pending user: %w", err)
	}

	return nil
}

// ChangePassword implements [UserService]. Every autologin token of the
// user is invalidated so stolen "remember me" cookies die with the old
// password.
func (u *userService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	passwordHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := u.users.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if err := u.tokens.InvalidateAllForUser(ctx, userID, models.TokenKindAutologin); err != nil {
		return fmt.Errorf("error invalidating autologin tokens: %w", err)
	}

	return nil
}

// DeleteUser implements [UserService].
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	for _, kind := range []models.TokenKind{models.TokenKindActivation, models.TokenKindAutologin} {
		if err := u.tokens.InvalidateAllForUser(ctx, userID, kind); err != nil {
			return fmt.Errorf("error invalidating tokens: %w", err)
		}
	}

	if err := u.users.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}
