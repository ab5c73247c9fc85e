package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/repository"
)

// DoctorStore is the slice of the repository layer the doctor endpoints need.
type DoctorStore interface {
	ListAll(ctx context.Context) ([]model.Doctor, error)
	Insert(ctx context.Context, d model.Doctor) (repository.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// DoctorHandler serves the admin-only doctor management endpoints.  Every
// method re-checks the requester's stored role the same way the admin grant
// does.
type DoctorHandler struct {
	Doctors DoctorStore
	Users   UserStore
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(doctors DoctorStore, users UserStore) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors, Users: users}
}

// requireAdmin resolves the authenticated requester and verifies their
// stored admin role.  When the check fails it writes the refusal response
// itself and reports ok=false; the returned error is whatever the response
// write produced.
func (h *DoctorHandler) requireAdmin(c echo.Context) (bool, error) {
	requester, err := authedEmail(c)
	if err != nil {
		return false, c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	ok, err := isAdmin(c.Request().Context(), h.Users, requester)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}
	if err != nil {
		return false, c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !ok {
		return false, c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	return true, nil
}

// GetDoctors handles GET /doctor (admin only).
func (h *DoctorHandler) GetDoctors(c echo.Context) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}
	doctors, err := h.Doctors.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, doctors)
}

// CreateDoctor handles POST /doctor (admin only).
func (h *DoctorHandler) CreateDoctor(c echo.Context) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}
	var d model.Doctor
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if d.Name == "" || d.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email required"})
	}
	res, err := h.Doctors.Insert(c.Request().Context(), d)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "result": res})
}

// DeleteDoctor handles DELETE /doctor/:email (admin only).
func (h *DoctorHandler) DeleteDoctor(c echo.Context) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}
	deleted, err := h.Doctors.DeleteByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if deleted == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "doctor not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "deletedCount": deleted})
}
