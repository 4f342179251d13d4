package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainloop/fitplan/internal/config"
	"github.com/trainloop/fitplan/internal/domain"
)

func tokenFixture() (*TokenService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeRefreshTokenRepo()
	cfg := config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	}
	return NewTokenService(cfg, tokens, users), users, tokens
}

func TestGenerateTokenPair(t *testing.T) {
	svc, users, _ := tokenFixture()
	ctx := context.Background()

	user := &domain.User{Email: "jane@example.com"}
	require.NoError(t, users.Create(ctx, user))

	pair, err := svc.GenerateTokenPair(ctx, user, "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	// The access token carries the user's identity and verifies with the
	// configured secret.
	claims := &domain.FitplanClaims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestRefreshAccessTokenRotates(t *testing.T) {
	svc, users, _ := tokenFixture()
	ctx := context.Background()

	user := &domain.User{Email: "jane@example.com"}
	require.NoError(t, users.Create(ctx, user))

	pair, err := svc.GenerateTokenPair(ctx, user, "", "")
	require.NoError(t, err)

	rotated, err := svc.RefreshAccessToken(ctx, pair.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The old refresh token is revoked by the rotation.
	_, err = svc.RefreshAccessToken(ctx, pair.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// The new one still works.
	_, err = svc.RefreshAccessToken(ctx, rotated.RefreshToken, "", "")
	assert.NoError(t, err)
}

func TestRefreshAccessTokenRejectsUnknownToken(t *testing.T) {
	svc, _, _ := tokenFixture()

	_, err := svc.RefreshAccessToken(context.Background(), "not-a-real-token", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRevokeRefreshToken(t *testing.T) {
	svc, users, _ := tokenFixture()
	ctx := context.Background()

	user := &domain.User{Email: "jane@example.com"}
	require.NoError(t, users.Create(ctx, user))

	pair, err := svc.GenerateTokenPair(ctx, user, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeRefreshToken(ctx, pair.RefreshToken))
	_, err = svc.RefreshAccessToken(ctx, pair.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRevokeAllUserTokens(t *testing.T) {
	svc, users, _ := tokenFixture()
	ctx := context.Background()

	user := &domain.User{Email: "jane@example.com"}
	require.NoError(t, users.Create(ctx, user))

	first, err := svc.GenerateTokenPair(ctx, user, "", "")
	require.NoError(t, err)
	second, err := svc.GenerateTokenPair(ctx, user, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAllUserTokens(ctx, user.ID))

	_, err = svc.RefreshAccessToken(ctx, first.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.RefreshAccessToken(ctx, second.RefreshToken, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshTokenStoredHashed(t *testing.T) {
	svc, users, tokens := tokenFixture()
	ctx := context.Background()

	user := &domain.User{Email: "jane@example.com"}
	require.NoError(t, users.Create(ctx, user))

	pair, err := svc.GenerateTokenPair(ctx, user, "", "")
	require.NoError(t, err)

	// Raw token never appears as a storage key; only its hash does.
	_, rawStored := tokens.tokens[pair.RefreshToken]
	assert.False(t, rawStored)
	stored, ok := tokens.tokens[hashToken(pair.RefreshToken)]
	require.True(t, ok)
	assert.Equal(t, user.ID, stored.UserID)
	assert.False(t, stored.Revoked)
}
