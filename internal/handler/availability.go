package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/model"
)

// GetAvailable handles GET /available?date=D.  It resolves, per service,
// which slots remain unbooked on the requested date and returns the catalog
// with each service's slot list overwritten by the free subsequence.  An
// absent or empty date matches no bookings, so every slot reports as free;
// the request is not rejected.
func (h *BookingHandler) GetAvailable(c echo.Context) error {
	date := c.QueryParam("date")
	ctx := c.Request().Context()

	services, err := h.Services.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bookings, err := h.Bookings.ListByDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, availableSlots(services, bookings))
}

// availableSlots subtracts booked slots from each service's slot list.
// Bookings join to services by treatment name.  The surviving slots keep the
// service's original order; every other field passes through untouched.
func availableSlots(services []model.Service, bookings []model.Booking) []model.Service {
	booked := make(map[string]map[string]bool, len(services))
	for _, b := range bookings {
		if booked[b.Treatment] == nil {
			booked[b.Treatment] = make(map[string]bool)
		}
		booked[b.Treatment][b.Slot] = true
	}

	out := make([]model.Service, 0, len(services))
	for _, s := range services {
		taken := booked[s.Name]
		free := make([]string, 0, len(s.Slots))
		for _, slot := range s.Slots {
			if !taken[slot] {
				free = append(free, slot)
			}
		}
		s.Slots = free
		out = append(out, s)
	}
	return out
}
