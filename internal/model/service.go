package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable treatment with a fixed catalog of time slots, stored
// in the `services` collection.  The collection is seeded externally and the
// application only ever reads it.  Name doubles as the join key against
// bookings (bookings reference the treatment by name, not by id).
//
// Slots keeps the seeded order; the availability endpoint overwrites it in
// the response with the subsequence of slots still free on the requested date.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}
