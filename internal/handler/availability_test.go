package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"doctors-portal-api/internal/model"
)

func TestAvailableSlotsNoBookings(t *testing.T) {
	services := []model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00", "11:00"}},
		{Name: "Fluoride", Slots: []string{"8:00"}},
	}

	out := availableSlots(services, nil)

	assert.Len(t, out, 2)
	assert.Equal(t, []string{"9:00", "10:00", "11:00"}, out[0].Slots)
	assert.Equal(t, []string{"8:00"}, out[1].Slots)
}

func TestAvailableSlotsRemovesBookedSlotKeepsOrder(t *testing.T) {
	services := []model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00", "11:00"}},
	}
	bookings := []model.Booking{
		{Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Patient: "a@x.com", Slot: "10:00"},
	}

	out := availableSlots(services, bookings)

	assert.Equal(t, []string{"9:00", "11:00"}, out[0].Slots)
}

func TestAvailableSlotsOnlyMatchingTreatmentAffected(t *testing.T) {
	services := []model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00"}},
		{Name: "Whitening", Slots: []string{"9:00", "10:00"}},
	}
	bookings := []model.Booking{
		{Treatment: "Whitening", Slot: "9:00"},
	}

	out := availableSlots(services, bookings)

	assert.Equal(t, []string{"9:00", "10:00"}, out[0].Slots)
	assert.Equal(t, []string{"10:00"}, out[1].Slots)
}

func TestAvailableSlotsAllBooked(t *testing.T) {
	services := []model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00"}},
	}
	bookings := []model.Booking{
		{Treatment: "Teeth Cleaning", Slot: "9:00"},
		{Treatment: "Teeth Cleaning", Slot: "10:00"},
	}

	out := availableSlots(services, bookings)

	assert.Empty(t, out[0].Slots)
}

func TestGetAvailable(t *testing.T) {
	services := new(MockServiceStore)
	bookings := new(MockBookingStore)

	services.On("ListAll", mock.Anything).Return([]model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00", "11:00"}},
	}, nil)
	bookings.On("ListByDate", mock.Anything, "Jan 1, 2024").Return([]model.Booking{
		{Treatment: "Teeth Cleaning", Date: "Jan 1, 2024", Patient: "a@x.com", Slot: "10:00"},
	}, nil)

	h := NewBookingHandler(bookings, services, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/available?date=Jan+1%2C+2024", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.GetAvailable(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":["9:00","11:00"]`)
	services.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestGetAvailableEmptyDate(t *testing.T) {
	// an absent date matches no bookings, so every slot reports as free
	services := new(MockServiceStore)
	bookings := new(MockBookingStore)

	services.On("ListAll", mock.Anything).Return([]model.Service{
		{Name: "Teeth Cleaning", Slots: []string{"9:00", "10:00"}},
	}, nil)
	bookings.On("ListByDate", mock.Anything, "").Return([]model.Booking{}, nil)

	h := NewBookingHandler(bookings, services, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/available", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.GetAvailable(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":["9:00","10:00"]`)
}
