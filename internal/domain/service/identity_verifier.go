// Package service defines ports to infrastructure the use cases depend on.
package service

import (
	"github.com/golang-jwt/jwt/v5"

	"safemap/internal/domain/entity"
)

// Claims defines the claims issued by the external auth provider.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// IdentityVerifier turns a bearer token into an Identity.
// Token issuance belongs to the auth provider; this side only verifies.
type IdentityVerifier interface {
	// VerifyToken checks the signature and expiry of a token string.
	VerifyToken(tokenString string) (*entity.Identity, error)
}
