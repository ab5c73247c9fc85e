package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-api/internal/model"
)

// ServiceRepo provides read-only access to the `services` collection.  The
// catalog is seeded externally; this application never writes to it.
type ServiceRepo struct {
	col *mongo.Collection
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *mongo.Database) *ServiceRepo {
	return &ServiceRepo{col: db.Collection("services")}
}

// ListAll returns the full service catalog.  Availability resolution always
// starts from a full scan, which is fine at this collection's size.
func (r *ServiceRepo) ListAll(ctx context.Context) ([]model.Service, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	services := make([]model.Service, 0)
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}
