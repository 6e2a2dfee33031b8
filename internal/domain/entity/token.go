package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes stored tokens.
type TokenType string

const (
	TokenTypeRefresh TokenType = "refresh"
)

// Token is a persisted, hashed refresh token.
type Token struct {
	ID        string
	UserID    string
	TokenType TokenType
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	Revoke    bool
}

// Claims are the parsed contents of an access or refresh token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
