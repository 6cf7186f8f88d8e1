package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/auth"
	autherrors "github.com/adeka83-arch/systemklinik-sub011/internal/auth/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

func newAuthService(t *testing.T) auth.Service {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return auth.NewService(auth.NewRepository(store.NewMemoryStore()), zap.NewNop())
}

func TestService_RegisterAndLogin(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	t.Run("Success Register", func(t *testing.T) {
		resp, err := service.Register(ctx, auth.RegisterRequest{
			Email:    "admin@klinik.local",
			Name:     "Admin Klinik",
			Password: "password123",
			Role:     auth.RoleAdmin,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, auth.RoleAdmin, resp.Role)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := service.Register(ctx, auth.RegisterRequest{
			Email:    "admin@klinik.local",
			Name:     "Admin Kedua",
			Password: "password123",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
	})

	t.Run("Default Role Staff", func(t *testing.T) {
		resp, err := service.Register(ctx, auth.RegisterRequest{
			Email:    "kasir@klinik.local",
			Name:     "Kasir",
			Password: "password123",
		})
		assert.NoError(t, err)
		assert.Equal(t, auth.RoleStaff, resp.Role)
	})

	t.Run("Success Login", func(t *testing.T) {
		token, refreshToken, resp, err := service.Login(ctx, "admin@klinik.local", "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, "admin@klinik.local", resp.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, "admin@klinik.local", "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, "nobody@klinik.local", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, auth.RegisterRequest{
		Email:    "staff@klinik.local",
		Name:     "Staff",
		Password: "password123",
	})
	assert.NoError(t, err)

	_, refreshToken, _, err := service.Login(ctx, "staff@klinik.local", "password123")
	assert.NoError(t, err)

	t.Run("Valid Refresh", func(t *testing.T) {
		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, registered.ID, resp.ID)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestService_GetMe(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, auth.RegisterRequest{
		Email:    "dokter@klinik.local",
		Name:     "drg. Falasifah",
		Password: "password123",
	})
	assert.NoError(t, err)

	resp, err := service.GetMe(ctx, registered.ID)
	assert.NoError(t, err)
	assert.Equal(t, "drg. Falasifah", resp.Name)

	_, err = service.GetMe(ctx, "missing-id")
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}
