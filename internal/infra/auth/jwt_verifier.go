// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"safemap/config"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/service"
)

// jwtVerifier validates HS256 access tokens issued by the external auth provider.
type jwtVerifier struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// VerifyToken checks the signature and expiry of a token string and returns the caller identity.
func (v *jwtVerifier) VerifyToken(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}

	token, err := v.parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (any, error) {
		return v.accessSecret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(fmt.Sprintf("failed to parse token: %v", err))
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("token has no subject")
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, nil
}
