package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/mock"
	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type userFixture struct {
	svc    service.UserService
	users  *mock.MockUserRepository
	tokens *mock.MockTokenService
	hasher secret.Hasher
}

func newUserFixture(t *testing.T, ctrl *gomock.Controller, activationRequired bool) *userFixture {
	t.Helper()

	cfg := config.App{
		Pepper:             "test-pepper",
		BcryptCost:         bcrypt.MinCost,
		ActivationRequired: activationRequired,
	}
	hasher, err := secret.NewHasher(cfg)
	require.NoError(t, err)

	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenService(ctrl)
	svc := service.NewUserService(users, hasher, tokens, cfg, logger.NewLogger("test"))

	return &userFixture{svc: svc, users: users, tokens: tokens, hasher: hasher}
}

func TestCreateUser_ActivationRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, true)
	ctx := context.Background()

	tokenSecret := make([]byte, secret.SecretBytes)
	selector := "a1b2c3d4e5f6a1b2c3d4e5f6"

	f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john", user.Login)
			assert.Equal(t, models.UserStatePendingActivation, user.State)
			assert.True(t, f.hasher.Verify("hunter2!", user.PasswordHash))
			user.UserID = 7
			return user, nil
		},
	)
	f.tokens.EXPECT().Issue(ctx, int64(7), models.TokenKindActivation).Return(selector, tokenSecret, nil)

	created, key, err := f.svc.CreateUser(ctx, "john", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, secret.EncodeBearerKey(selector, tokenSecret), key)
}

func TestCreateUser_ActivationOff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	// no Issue expectation: active accounts get no activation token
	f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.UserStateActive, user.State)
			user.UserID = 7
			return user, nil
		},
	)

	created, key, err := f.svc.CreateUser(ctx, "john", "hunter2!")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Empty(t, key)
}

func TestCreateUser_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	_, _, err := f.svc.CreateUser(ctx, "", "hunter2!")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, _, err = f.svc.CreateUser(ctx, "john", "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	f.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, _, err := f.svc.CreateUser(ctx, "john", "hunter2!")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestActivateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, true)
	ctx := context.Background()

	tokenSecret := make([]byte, secret.SecretBytes)
	selector := "a1b2c3d4e5f6a1b2c3d4e5f6"
	key := secret.EncodeBearerKey(selector, tokenSecret)

	gomock.InOrder(
		f.tokens.EXPECT().Consume(ctx, models.TokenKindActivation, selector, tokenSecret).Return(int64(7), nil),
		f.users.EXPECT().MarkActive(ctx, int64(7)).Return(nil),
	)

	require.NoError(t, f.svc.ActivateUser(ctx, key))
}

func TestActivateUser_MalformedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, true)
	ctx := context.Background()

	err := f.svc.ActivateUser(ctx, "garbage")
	assert.ErrorIs(t, err, secret.ErrMalformedBearerKey)
}

func TestActivateUser_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, true)
	ctx := context.Background()

	tokenSecret := make([]byte, secret.SecretBytes)
	selector := "a1b2c3d4e5f6a1b2c3d4e5f6"
	key := secret.EncodeBearerKey(selector, tokenSecret)

	f.tokens.EXPECT().Consume(ctx, models.TokenKindActivation, selector, tokenSecret).
		Return(int64(0), store.ErrTokenNotFound)

	err := f.svc.ActivateUser(ctx, key)
	assert.ErrorIs(t, err, store.ErrTokenNotFound)
}

func TestDenyActivation_DeletesPendingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, true)
	ctx := context.Background()

	tokenSecret := make([]byte, secret.SecretBytes)
	selector := "a1b2c3d4e5f6a1b2c3d4e5f6"
	key := secret.EncodeBearerKey(selector, tokenSecret)

	gomock.InOrder(
		f.tokens.EXPECT().Consume(ctx, models.TokenKindActivation, selector, tokenSecret).Return(int64(7), nil),
		f.users.EXPECT().DeleteUser(ctx, int64(7)).Return(nil),
	)

	require.NoError(t, f.svc.DenyActivation(ctx, key))
}

func TestChangePassword_InvalidatesAutologinTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	gomock.InOrder(
		f.users.EXPECT().UpdatePasswordHash(ctx, int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, newHash string) error {
				assert.True(t, f.hasher.Verify("new-password!", newHash))
				return nil
			},
		),
		f.tokens.EXPECT().InvalidateAllForUser(ctx, int64(7), models.TokenKindAutologin).Return(nil),
	)

	require.NoError(t, f.svc.ChangePassword(ctx, 7, "new-password!"))
}

func TestChangePassword_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	err := f.svc.ChangePassword(ctx, 7, "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestDeleteUser_RemovesTokensOfBothKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl, false)
	ctx := context.Background()

	gomock.InOrder(
		f.tokens.EXPECT().InvalidateAllForUser(ctx, int64(7), models.TokenKindActivation).Return(nil),
		f.tokens.EXPECT().InvalidateAllForUser(ctx, int64(7), models.TokenKindAutologin).Return(nil),
		f.users.EXPECT().DeleteUser(ctx, int64(7)).Return(nil),
	)

	require.NoError(t, f.svc.DeleteUser(ctx, 7))
}
