package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a staff document in the `doctors` collection, managed through the
// admin-only doctor endpoints.  Email is the deletion key.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}
