package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/service"
)

const principalKey = "principal"

// Auth requires a valid Bearer session token and stores the resolved
// principal in the request context.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := principalFromRequest(c, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid session token")
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// AdminOnly guards admin endpoints. Any failure — no token, bad token, or
// a non-admin principal — is a 403, so the response does not reveal
// whether the endpoint exists behind a login wall.
func AdminOnly(secret, adminEmail string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := principalFromRequest(c, secret)
			if err != nil || adminEmail == "" || p.Email != adminEmail {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func principalFromRequest(c echo.Context, secret string) (service.Principal, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return service.Principal{}, service.ErrInvalidCredentials
	}
	return service.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
}

// Principal returns the identity stored by Auth/AdminOnly. The zero value
// means the route ran without an auth middleware.
func Principal(c echo.Context) service.Principal {
	p, _ := c.Get(principalKey).(service.Principal)
	return p
}
