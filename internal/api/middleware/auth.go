package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionChecker reports whether a session id is still active. Sessions live
// in Redis; a token whose session has been revoked or expired server-side is
// rejected even when its signature and exp claim are still valid.
type SessionChecker interface {
	Exists(ctx context.Context, sid string) (bool, error)
}

// Auth validates the session token and injects claims into context.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			active, err := sessions.Exists(c.Request().Context(), sid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session lookup failed")
			}
			if !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
			}

			c.Set("username", claims["username"])
			c.Set("role", claims["role"])
			c.Set("sid", sid)

			return next(c)
		}
	}
}
