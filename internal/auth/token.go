// Package auth implements password hashing and the JWT token service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"runtracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "runtracker-api"
	tokenAudience = "runtracker-client"
)

// Claims is the JWT payload: the registered claims plus a password-free
// snapshot of the user as of issuance. Ownership checks downstream read this
// snapshot, not the database, so profile edits only show up after the next
// login or refresh.
type Claims struct {
	User models.AuthUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
// The signing secret and TTL come from the process configuration and never
// change after startup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token embedding the user snapshot, with the
// username as subject and the configured TTL as expiry.
func (s *TokenService) Issue(user models.AuthUser) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, expiry, issuer and audience, and returns the
// embedded claims. Any failure maps to a generic unauthorized error; the
// caller turns that into a 401.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}

	return claims, nil
}
