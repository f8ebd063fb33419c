package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/movian/movian-api/internal/core/service"
)

// setSessionCookie attaches a session token as an HTTP-only cookie. In
// development the cookie is SameSite=Lax over plain HTTP; everywhere else it
// is SameSite=None + Secure so the cross-origin frontend can send it.
func setSessionCookie(c echo.Context, name, token string, dev bool) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.SessionTTL / time.Second),
		HttpOnly: true,
	}
	if dev {
		cookie.SameSite = http.SameSiteLaxMode
	} else {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

// clearSessionCookie expires the named session cookie immediately.
func clearSessionCookie(c echo.Context, name string, dev bool) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	if dev {
		cookie.SameSite = http.SameSiteLaxMode
	} else {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}
