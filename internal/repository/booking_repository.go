package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-api/internal/model"
)

// ErrBookingNotFound is returned when a lookup matches no booking document.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateBooking is returned when an insert collides with the unique
// (treatment, date, patient) index, i.e. a concurrent request won the race
// for the same admission key.  Handlers treat this as the normal
// already-booked outcome, not as a failure.
var ErrDuplicateBooking = errors.New("duplicate booking")

// BookingRepo provides access to the `booking` collection.
type BookingRepo struct {
	col *mongo.Collection
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{col: db.Collection("booking")}
}

// FindByKey fetches the booking matching the admission key exactly.  The slot
// is deliberately not part of the key.
func (r *BookingRepo) FindByKey(ctx context.Context, treatment, date, patient string) (model.Booking, error) {
	var b model.Booking
	err := r.col.FindOne(ctx, bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListByDate returns every booking whose date equals the given string
// exactly.  An empty date matches nothing, so all slots resolve as free.
func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return r.list(ctx, bson.M{"date": date})
}

// ListByPatient returns every booking owned by the given patient email.
func (r *BookingRepo) ListByPatient(ctx context.Context, patient string) ([]model.Booking, error) {
	return r.list(ctx, bson.M{"patient": patient})
}

// Insert stores a new booking document verbatim.  A duplicate-key violation
// on the admission index is mapped to ErrDuplicateBooking.
func (r *BookingRepo) Insert(ctx context.Context, b model.Booking) (InsertResult, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return InsertResult{}, ErrDuplicateBooking
		}
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *BookingRepo) list(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := make([]model.Booking, 0)
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
