package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/api/middleware"
	"github.com/movian/movian-api/internal/core/domain"
)

// currentUser extracts the sanitized user injected by the user guard. Its
// presence proves the guard ran; a handler on a guarded route finding it
// absent is a wiring bug, rejected with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// adminIdentity extracts the admin claims injected by the admin guard.
func adminIdentity(c echo.Context) (email, name string, err error) {
	email, _ = c.Get(middleware.ContextAdminEmailKey).(string)
	name, _ = c.Get(middleware.ContextAdminNameKey).(string)
	if email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, name, nil
}
