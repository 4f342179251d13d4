package domain

import "github.com/golang-jwt/jwt/v5"

// FitplanClaims is the JWT payload issued after login.
type FitplanClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
