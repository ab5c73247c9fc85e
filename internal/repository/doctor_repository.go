package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-api/internal/model"
)

// DoctorRepo provides access to the `doctors` collection.  All mutating
// access goes through admin-only endpoints.
type DoctorRepo struct {
	col *mongo.Collection
}

// NewDoctorRepo returns a DoctorRepo bound to the given database.
func NewDoctorRepo(db *mongo.Database) *DoctorRepo {
	return &DoctorRepo{col: db.Collection("doctors")}
}

// ListAll returns every doctor document.
func (r *DoctorRepo) ListAll(ctx context.Context) ([]model.Doctor, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	doctors := make([]model.Doctor, 0)
	if err := cur.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Insert stores a new doctor document.
func (r *DoctorRepo) Insert(ctx context.Context, d model.Doctor) (InsertResult, error) {
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

// DeleteByEmail removes the doctor keyed by email and reports how many
// documents were deleted (zero when the email was unknown).
func (r *DoctorRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
