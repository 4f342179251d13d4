package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/domain"
)

func authFixture() (*AuthService, *fakeUserRepo) {
	tokenSvc, users, _ := tokenFixture()
	return NewAuthService(users, tokenSvc), users
}

func TestRegister(t *testing.T) {
	svc, users := authFixture()
	ctx := context.Background()

	t.Run("creates account and signs in", func(t *testing.T) {
		resp, err := svc.Register(ctx, RegisterRequest{
			Email:    "  Jane@Example.com ",
			Name:     "Jane",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.Equal(t, "Jane", resp.User.Name)
		assert.NotEmpty(t, resp.User.PasswordHash)
		assert.NotEqual(t, "correct horse", resp.User.PasswordHash)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)

		stored, err := users.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, stored.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{Email: "jane@example.com", Password: "correct horse"})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{Email: "new@example.com", Password: "short"})
		assert.Error(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterRequest{Email: "not-an-email", Password: "correct horse"})
		assert.Error(t, err)
	})

	t.Run("empty name falls back to email", func(t *testing.T) {
		resp, err := svc.Register(ctx, RegisterRequest{Email: "noname@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "noname@example.com", resp.User.Name)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := authFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "jane@example.com", Password: "correct horse"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, "Jane@Example.com", "correct horse", "", "")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "jane@example.com", "wrong horse", "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		// Indistinguishable from a wrong password.
		_, err := svc.Login(ctx, "nobody@example.com", "correct horse", "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
