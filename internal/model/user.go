package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an application user document in the `user` collection.
// The email is the identity key: profile upserts, admin lookups and role
// grants are all filtered by it.  Uniqueness is conventional rather than
// index-enforced.  Role is empty for regular users and "admin" for
// administrators; clients may attach additional profile fields which are
// preserved by the $set-style upsert and are not modelled here.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// RoleAdmin is the only privileged role value stored on a user document.
const RoleAdmin = "admin"
