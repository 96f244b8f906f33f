package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/nourishnet/ordering-service/pkg/utils"
)

// Session authenticates requests via the session cookie and stashes the user
// id on the echo context. The cookie is re-issued with a fresh expiry on
// every authenticated request, so active sessions never run out.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			userID, err := utils.ParseSessionToken(cookie.Value, jwtSecret)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			if refreshed, err := utils.RefreshSessionToken(cookie.Value, jwtSecret); err == nil {
				c.SetCookie(&http.Cookie{
					Name:     utils.SessionCookieName,
					Value:    refreshed,
					Path:     "/",
					Expires:  time.Now().Add(utils.SessionDuration),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set("userID", userID)

			return next(c)
		}
	}
}
