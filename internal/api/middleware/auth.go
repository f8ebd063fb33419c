package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

const (
	// UserCookie carries the regular user session token.
	UserCookie = "token"
	// AdminCookie carries the admin session token. The two cookies have
	// distinct names so both sessions can coexist in one browser.
	AdminCookie = "adminToken"

	// ContextUserKey is where the user guard stores the sanitized user.
	ContextUserKey = "user"
)

// Auth is the user access guard. It accepts the session token from the user
// cookie or a bearer header, verifies it, hard-rejects admin tokens, and
// re-checks the account against the database on every request so bans take
// effect immediately without token revocation.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c, UserCookie)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// Cross-kind rejection: an admin token never opens user routes,
			// even when otherwise well-formed and unexpired.
			if isAdmin, _ := claims["admin"].(bool); isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admins cannot access user routes")
			}

			id, _ := claims["id"].(string)
			if id == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "account no longer exists")
				}
				return err
			}
			if user.IsBanned {
				return echo.NewHTTPError(http.StatusForbidden, "account has been banned")
			}

			c.Set(ContextUserKey, user.Sanitized())
			return next(c)
		}
	}
}

// TokenFromRequest extracts a token from the named cookie, falling back to
// an Authorization: Bearer header.
func TokenFromRequest(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
