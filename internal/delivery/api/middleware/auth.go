package middleware

import (
	"strings"

	deliverycontext "safemap/internal/delivery/context"
	"safemap/internal/domain/entity"
	domainerrors "safemap/internal/domain/errors"
	"safemap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens into identities and guards role-restricted routes.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.resolve(c)
		if err != nil {
			return err
		}
		if identity == nil {
			return domainerrors.ErrAuthenticationRequired.WithDetails("Authorization header is missing")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// Identify attaches the caller identity when a token is sent and lets anonymous requests through.
// A token that is present but invalid is still rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.resolve(c)
		if err != nil {
			return err
		}
		if identity != nil {
			deliverycontext.SetIdentity(c, identity)
		}

		return next(c)
	}
}

// RequireAnyRole must run after Authenticate.
func (m *AuthMiddleware) RequireAnyRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrAuthenticationRequired
			}

			if !identity.Roles.ContainsAny(roles...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Identity, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, nil
	}

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("Invalid token format, must be Bearer token")
	}

	return m.verifier.VerifyToken(tokenString)
}
