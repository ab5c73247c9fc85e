package handler

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/middleware"
	"doctors-portal-api/internal/model"
)

// authedEmail extracts the email placed in context by the auth middleware.
// Handlers behind RequireAuth can rely on it being set; an empty result
// means the route was registered without the guard by mistake.
func authedEmail(c echo.Context) (string, error) {
	v, ok := c.Get(middleware.EmailKey).(string)
	if !ok || v == "" {
		return "", errors.New("no authenticated email in context")
	}
	return v, nil
}

// isAdmin reports whether the user behind email currently holds the admin
// role.  The live document is consulted rather than any token claim, so a
// grant or revocation takes effect on the next request.  A missing user is
// an explicit ErrUserNotFound from the store, never a silent false.
func isAdmin(ctx context.Context, users UserStore, email string) (bool, error) {
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.Role == model.RoleAdmin, nil
}
