package service

import (
	"context"
	"testing"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "test-secret"

func newAuthServiceForTest() (IAuthService, *fakeFactory) {
	factory := newFakeFactory()
	return NewAuthService(factory, testJwtSecret), factory
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice Martin",
		Email:    "alice@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "USER", registered.User.Role)

	logged, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, logged.User.Id)

	// The token carries the identity the middleware restores.
	token, err := jwt.Parse(logged.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, registered.User.Id.String(), claims["user_id"])
	assert.Equal(t, "USER", claims["role"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	req := &dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "motdepasse123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.Equal(t, "CONFLICT", apperror.As(err).Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "mauvais-mot-de-passe",
	})
	require.Error(t, err)
	badPassword := apperror.As(err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "inconnue@example.com",
		Password: "motdepasse123",
	})
	require.Error(t, err)
	unknownEmail := apperror.As(err)

	// Unknown email and bad password are indistinguishable.
	assert.Equal(t, "UNAUTHENTICATED", badPassword.Code)
	assert.Equal(t, badPassword.Message, unknownEmail.Message)
}

func TestProfile(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice Martin",
		Email:    "alice@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)

	caller := &entity.Caller{Id: registered.User.Id, Role: entity.UserRoleUser}
	profile, err := svc.Profile(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, "Alice Martin", profile.Name)

	_, err = svc.Profile(context.Background(), nil)
	assert.Equal(t, "UNAUTHENTICATED", apperror.As(err).Code)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "motdepasse123",
	})
	require.NoError(t, err)
	caller := &entity.Caller{Id: registered.User.Id, Role: entity.UserRoleUser}

	err = svc.ChangePassword(context.Background(), caller, &dto.ChangePasswordRequest{
		CurrentPassword: "mauvais",
		NewPassword:     "nouveaumotdepasse",
	})
	assert.Equal(t, "UNAUTHENTICATED", apperror.As(err).Code)

	err = svc.ChangePassword(context.Background(), caller, &dto.ChangePasswordRequest{
		CurrentPassword: "motdepasse123",
		NewPassword:     "nouveaumotdepasse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "nouveaumotdepasse",
	})
	assert.NoError(t, err)
}
