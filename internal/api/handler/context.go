package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUser extracts the identity claims injected by the Auth middleware.
// A missing user_id means the middleware did not run on this route, which
// is a wiring bug surfaced as 401 rather than a panic downstream.
func ctxUser(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get("email").(string)
	return userID, email, nil
}
