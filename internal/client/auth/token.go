// Package auth mints session tokens for authenticated accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/appointo/internal/client/models"
)

// MockTokenPrefix prefixes every token minted by MockIssuer.
const MockTokenPrefix = "mock-jwt-token-"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

// TokenIssuer mints an opaque session token for an account.
type TokenIssuer interface {
	Issue(account models.Account) (string, error)
}

// MockIssuer produces "mock-jwt-token-<accountId>".
type MockIssuer struct{}

func (MockIssuer) Issue(account models.Account) (string, error) {
	return MockTokenPrefix + account.ID, nil
}

// Claims are the JWT claims written by JWTIssuer.
type Claims struct {
	jwt.RegisteredClaims
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// JWTIssuer signs HS256 tokens. Every token carries a random jti, so two
// logins of the same account never yield the same token. Tokens do not
// expire.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewJWTIssuer(secret []byte) (*JWTIssuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &JWTIssuer{secret: secret, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(account models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  account.ID,
			IssuedAt: jwt.NewNumericDate(i.now()),
		},
		Email: account.Email,
		Role:  account.Role,
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse verifies tokenString and returns its claims.
func (i *JWTIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
