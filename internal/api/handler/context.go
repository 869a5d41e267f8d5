package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the user id injected by the Auth middleware. An empty
// id means the middleware did not run or the token carried no identity; the
// request fails fast with 401 before any service call.
func ctxIdentity(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
