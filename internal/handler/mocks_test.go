package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/repository"
)

// MockUserStore implements UserStore for handler tests.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Upsert(ctx context.Context, email string, profile map[string]any) (repository.UpsertResult, error) {
	args := m.Called(ctx, email, profile)
	return args.Get(0).(repository.UpsertResult), args.Error(1)
}

func (m *MockUserStore) SetRole(ctx context.Context, email, role string) (repository.UpsertResult, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(repository.UpsertResult), args.Error(1)
}

// MockServiceStore implements ServiceStore for handler tests.
type MockServiceStore struct {
	mock.Mock
}

func (m *MockServiceStore) ListAll(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Service), args.Error(1)
}

// MockBookingStore implements BookingStore for handler tests.
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) FindByKey(ctx context.Context, treatment, date, patient string) (model.Booking, error) {
	args := m.Called(ctx, treatment, date, patient)
	return args.Get(0).(model.Booking), args.Error(1)
}

func (m *MockBookingStore) Insert(ctx context.Context, b model.Booking) (repository.InsertResult, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(repository.InsertResult), args.Error(1)
}

func (m *MockBookingStore) ListByPatient(ctx context.Context, patient string) ([]model.Booking, error) {
	args := m.Called(ctx, patient)
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingStore) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]model.Booking), args.Error(1)
}

// MockDoctorStore implements DoctorStore for handler tests.
type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) ListAll(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorStore) Insert(ctx context.Context, d model.Doctor) (repository.InsertResult, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(repository.InsertResult), args.Error(1)
}

func (m *MockDoctorStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}
