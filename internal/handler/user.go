package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/repository"
	"doctors-portal-api/internal/utils"
)

// UserStore is the slice of the repository layer the user and admin
// endpoints need.
type UserStore interface {
	ListAll(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Upsert(ctx context.Context, email string, profile map[string]any) (repository.UpsertResult, error)
	SetRole(ctx context.Context, email, role string) (repository.UpsertResult, error)
}

// UserHandler serves user listing, profile upserts, the admin lookup and
// the admin grant.  It also issues session tokens: a profile upsert is the
// portal's de-facto login, handing the client a fresh one-hour token for the
// upserted email.
type UserHandler struct {
	Users       UserStore
	Secret      string
	TokenTTLMin int
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users UserStore, secret string, tokenTTLMin int) *UserHandler {
	return &UserHandler{Users: users, Secret: secret, TokenTTLMin: tokenTTLMin}
}

// GetUsers handles GET /user (guarded).  Any authenticated user may list
// the directory.
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, users)
}

// GetAdmin handles GET /admin/:email.  It reports whether the given user
// holds the admin role.  An unknown email is an explicit 404, not a crash
// and not a silent false.
func (h *UserHandler) GetAdmin(c echo.Context) error {
	email := c.Param("email")
	u, err := h.Users.GetByEmail(c.Request().Context(), email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": u.Role == model.RoleAdmin})
}

// GrantAdmin handles PUT /user/admin/:email (guarded).  Only a requester
// whose stored record currently carries the admin role may grant it; the
// check reads the live document, not a token claim.  A non-admin requester
// gets 403 and no mutation takes place.
func (h *UserHandler) GrantAdmin(c echo.Context) error {
	requester, err := authedEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	ctx := c.Request().Context()

	ok, err := isAdmin(ctx, h.Users, requester)
	if errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	res, err := h.Users.SetRole(ctx, c.Param("email"), model.RoleAdmin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, res)
}

// UpsertUser handles PUT /user/:email (unauthenticated by design; see the
// router's policy table).  The request body is applied to the user document
// as a field-level $set with upsert, and a fresh session token for the email
// is returned alongside the store's acknowledgment.
func (h *UserHandler) UpsertUser(c echo.Context) error {
	email := c.Param("email")

	profile := map[string]any{}
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res, err := h.Users.Upsert(c.Request().Context(), email, profile)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	token, err := utils.NewAccessToken(h.Secret, email, h.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"result": res, "token": token.Token})
}
