package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"doctors-portal-api/internal/middleware"
	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/queue"
	"doctors-portal-api/internal/repository"
)

const bookingBody = `{"treatment":"Teeth Cleaning","date":"Jan 1, 2024","slot":"10:00","patient":"a@x.com"}`

func newBookingContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingAccepted(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("FindByKey", mock.Anything, "Teeth Cleaning", "Jan 1, 2024", "a@x.com").
		Return(model.Booking{}, repository.ErrBookingNotFound)
	bookings.On("Insert", mock.Anything, mock.AnythingOfType("model.Booking")).
		Return(repository.InsertResult{InsertedID: "abc123"}, nil)

	published := make(chan queue.BookingConfirmedEvent, 1)
	h := NewBookingHandler(bookings, nil, func(_ context.Context, ev queue.BookingConfirmedEvent) {
		published <- ev
	})

	c, rec := newBookingContext(bookingBody)
	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "abc123")
	bookings.AssertExpectations(t)

	select {
	case ev := <-published:
		assert.Equal(t, "Teeth Cleaning", ev.Treatment)
		assert.Equal(t, "10:00", ev.Slot)
		assert.Equal(t, "a@x.com", ev.Patient)
	case <-time.After(time.Second):
		t.Fatal("booking confirmed event was not published")
	}
}

func TestCreateBookingDuplicateReturnsExisting(t *testing.T) {
	existing := model.Booking{Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Slot: "9:00", Patient: "a@x.com"}

	bookings := new(MockBookingStore)
	bookings.On("FindByKey", mock.Anything, "Teeth Cleaning", "Jan 1, 2024", "a@x.com").
		Return(existing, nil)

	h := NewBookingHandler(bookings, nil, nil)

	// same admission key, different slot: still a duplicate
	c, rec := newBookingContext(bookingBody)
	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"slot":"9:00"`)
	bookings.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateBookingLostRace(t *testing.T) {
	// admission check sees nothing, but the insert collides with the unique
	// index; the winner's document comes back with success=false
	winner := model.Booking{Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Slot: "11:00", Patient: "a@x.com"}

	bookings := new(MockBookingStore)
	bookings.On("FindByKey", mock.Anything, "Teeth Cleaning", "Jan 1, 2024", "a@x.com").
		Return(model.Booking{}, repository.ErrBookingNotFound).Once()
	bookings.On("Insert", mock.Anything, mock.AnythingOfType("model.Booking")).
		Return(repository.InsertResult{}, repository.ErrDuplicateBooking)
	bookings.On("FindByKey", mock.Anything, "Teeth Cleaning", "Jan 1, 2024", "a@x.com").
		Return(winner, nil).Once()

	h := NewBookingHandler(bookings, nil, nil)

	c, rec := newBookingContext(bookingBody)
	assert.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), `"slot":"11:00"`)
	bookings.AssertExpectations(t)
}

func TestListBookingsPatientMismatch(t *testing.T) {
	bookings := new(MockBookingStore)
	h := NewBookingHandler(bookings, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/booking?patient=b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "a@x.com")

	assert.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	bookings.AssertNotCalled(t, "ListByPatient", mock.Anything, mock.Anything)
}

func TestListBookingsOwnPatient(t *testing.T) {
	bookings := new(MockBookingStore)
	bookings.On("ListByPatient", mock.Anything, "a@x.com").Return([]model.Booking{
		{Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Slot: "10:00", Patient: "a@x.com"},
	}, nil)
	h := NewBookingHandler(bookings, nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/booking?patient=a@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.EmailKey, "a@x.com")

	assert.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Teeth Cleaning")
	bookings.AssertExpectations(t)
}
