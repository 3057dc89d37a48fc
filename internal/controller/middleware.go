package controller

import (
	"net/http"
	"strings"

	"delivery-market-api/internal/token"

	"github.com/labstack/echo"
)

const identityKey = "identity"

// authRequired resolves the requester's identity from the bearer header or
// the session cookie and stores it in the request context. Handlers pass it
// on to services explicitly, nothing downstream reads a global.
func authRequired(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := requesterIdentity(c, tokens)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{"Sign in to continue"})
			}

			c.Set(identityKey, username)

			return next(c)
		}
	}
}

func requesterIdentity(c echo.Context, tokens *token.Manager) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return "", err
	}

	return tokens.Parse(cookie.Value)
}

func identity(c echo.Context) string {
	username, _ := c.Get(identityKey).(string)

	return username
}
