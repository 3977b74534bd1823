package auth

import (
	"testing"
	"time"

	"safemap/config"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) service.IdentityVerifier {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims *service.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func validClaims(subject string, roles ...string) *service.Claims {
	now := time.Now()

	return &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
	}
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	verifier := newTestVerifier(t)

	token := signToken(t, jwt.SigningMethodHS256, testAccessSecret, validClaims("user-42", "guardian", "owner", "user"))

	identity, err := verifier.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, entity.Roles{entity.RoleGuardian, entity.RoleUser}, identity.Roles)
	assert.True(t, identity.IsModerator())
}

func TestJWTVerifier_RejectsInvalidTokens(t *testing.T) {
	verifier := newTestVerifier(t)

	expired := validClaims("user-1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims("user-1")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "clearly-not-a-jwt-token-format"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, "another_secret_key_entirely", validClaims("user-1"))},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, testAccessSecret, validClaims("user-1"))},
		{"expired", signToken(t, jwt.SigningMethodHS256, testAccessSecret, expired)},
		{"missing expiry", signToken(t, jwt.SigningMethodHS256, testAccessSecret, noExpiry)},
		{"missing subject", signToken(t, jwt.SigningMethodHS256, testAccessSecret, validClaims(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.VerifyToken(tt.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTVerifier_EmptySecret(t *testing.T) {
	verifier, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, verifier)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
