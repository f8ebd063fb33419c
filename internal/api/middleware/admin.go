package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// ContextAdminEmailKey and ContextAdminNameKey hold the decoded admin
	// claims injected by the admin guard.
	ContextAdminEmailKey = "admin_email"
	ContextAdminNameKey  = "admin_name"
)

// Admin is the admin access guard. It validates the separately-issued admin
// token and requires the admin:true claim. There is no ban check: the admin
// is an environment-configured principal, not a row in the users collection.
// Failures are deliberately less granular than the user guard's.
func Admin(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c, AdminCookie)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token missing")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			if isAdmin, _ := claims["admin"].(bool); !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized")
			}

			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)
			c.Set(ContextAdminEmailKey, email)
			c.Set(ContextAdminNameKey, name)

			return next(c)
		}
	}
}
