package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/queue"
	"doctors-portal-api/internal/repository"
)

// BookingStore is the slice of the repository layer the booking endpoints
// need.
type BookingStore interface {
	FindByKey(ctx context.Context, treatment, date, patient string) (model.Booking, error)
	Insert(ctx context.Context, b model.Booking) (repository.InsertResult, error)
	ListByPatient(ctx context.Context, patient string) ([]model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
}

// BookingHandler serves booking admission, the per-patient booking list and
// slot availability.  Publish, when set, is invoked in the background for
// every accepted booking; publish failures never affect the response.
type BookingHandler struct {
	Bookings BookingStore
	Services ServiceStore
	Publish  func(ctx context.Context, ev queue.BookingConfirmedEvent)
}

// NewBookingHandler constructs a BookingHandler.  publish may be nil when no
// broker is configured.
func NewBookingHandler(bookings BookingStore, services ServiceStore, publish func(ctx context.Context, ev queue.BookingConfirmedEvent)) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Services: services, Publish: publish}
}

// CreateBooking handles POST /booking.  Admission checks for an existing
// booking under the (treatment, date, patient) key — the slot is not part of
// the key — and only inserts when none exists.  A duplicate is a normal
// outcome: the existing booking is returned with success=false and nothing
// is written.  The unique index on the collection closes the check-then-act
// race; a losing concurrent insert surfaces as ErrDuplicateBooking and is
// folded into the same already-booked response.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx := c.Request().Context()

	existing, err := h.Bookings.FindByKey(ctx, b.Treatment, b.Date, b.Patient)
	if err == nil {
		return c.JSON(http.StatusOK, echo.Map{"success": false, "booking": existing})
	}
	if !errors.Is(err, repository.ErrBookingNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	res, err := h.Bookings.Insert(ctx, b)
	if errors.Is(err, repository.ErrDuplicateBooking) {
		// lost the race; hand back the winner's document
		winner, ferr := h.Bookings.FindByKey(ctx, b.Treatment, b.Date, b.Patient)
		if ferr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": false, "booking": winner})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if h.Publish != nil {
		ev := queue.BookingConfirmedEvent{
			Treatment:   b.Treatment,
			Date:        b.Date,
			Slot:        b.Slot,
			Patient:     b.Patient,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go h.Publish(context.Background(), ev)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "result": res})
}

// ListBookings handles GET /booking?patient=P (guarded).  The requested
// patient must be the authenticated identity; anyone else's bookings are
// off limits regardless of role.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	email, err := authedEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
	}
	patient := c.QueryParam("patient")
	if patient != email {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
	}
	bookings, err := h.Bookings.ListByPatient(c.Request().Context(), patient)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookings)
}
