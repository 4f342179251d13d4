package domain

import (
	"context"
	"time"
)

// RefreshToken is a stored, hashed refresh credential. The raw token is only
// ever handed to the client; lookups go through the hash.
type RefreshToken struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenHash string    `bson:"token_hash" json:"-"` // Unique Index
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	Revoked   bool      `bson:"revoked" json:"revoked"`
	UserAgent string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	IPAddress string    `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsValid reports whether the token can still be exchanged.
func (t *RefreshToken) IsValid() bool {
	return !t.Revoked && time.Now().Before(t.ExpiresAt)
}

// RefreshTokenRepository defines persistence for refresh tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
}
