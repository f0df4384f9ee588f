// Package auth verifies bearer tokens issued by the identity
// collaborator and maps them to the opaque principal this service acts
// on. User and session persistence live elsewhere; a token's subject
// and role claim are all we consume.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims this service understands
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates HMAC-signed tokens and extracts the principal
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given shared secret
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Principal parses and validates a token string and returns the acting
// principal. Any parse or validation failure maps to
// domain.ErrUnauthenticated.
func (v *Verifier) Principal(tokenString string) (domain.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	if claims.Subject == "" {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	role := domain.Role(claims.Role)
	if role != domain.RoleCustomer && role != domain.RoleStaff {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	return domain.Principal{ID: claims.Subject, Role: role}, nil
}

// IssueToken signs a token for the given principal. Used by tests and
// local tooling; production tokens come from the identity provider
// sharing the same secret.
func (v *Verifier) IssueToken(principal domain.Principal, ttl time.Duration) (string, error) {
	if principal.ID == "" {
		return "", errors.New("principal id is required")
	}
	claims := Claims{
		Role: string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
