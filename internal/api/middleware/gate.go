package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
)

// Context keys set by the gate for downstream handlers.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
)

// Gate is the single authorization middleware. It resolves the access
// level from the policy table, and for protected requests validates the
// bearer token (signature + expiry), requires at least one role claim,
// and injects the identity into the request context.
func Gate(jwtSecret string, policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if policy.LevelFor(c.Request().Method, c.Request().URL.Path) == LevelPublic {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return domain.ErrUnauthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				if errors.Is(err, jwt.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
					return domain.ErrTokenExpired
				}
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrTokenInvalid
			}

			username, _ := claims["sub"].(string)
			roles := rolesFromClaims(claims)
			if username == "" || len(roles) == 0 {
				metrics.TokenRejectionsTotal.WithLabelValues("no_roles").Inc()
				return domain.ErrForbidden
			}

			c.Set(CtxUsername, username)
			c.Set(CtxRoles, roles)

			return next(c)
		}
	}
}

// rolesFromClaims extracts the roles claim, tolerating the []interface{}
// shape JSON decoding produces.
func rolesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok && s != "" {
			roles = append(roles, s)
		}
	}
	return roles
}
