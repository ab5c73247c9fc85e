package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/model"
)

// ServiceStore is the slice of the repository layer the catalog endpoints
// need.  Declaring it here keeps handlers testable against mocks.
type ServiceStore interface {
	ListAll(ctx context.Context) ([]model.Service, error)
}

// ServiceHandler serves the public treatment catalog.
type ServiceHandler struct {
	Services ServiceStore
}

// NewServiceHandler constructs a ServiceHandler.
func NewServiceHandler(services ServiceStore) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

// GetServices handles GET /services.  It returns every service with its
// seeded slot list, untouched by any booking state.
func (h *ServiceHandler) GetServices(c echo.Context) error {
	services, err := h.Services.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, services)
}
