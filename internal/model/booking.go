package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking records a patient's reservation of one slot of one treatment on one
// date, stored in the `booking` collection.
//
// Treatment must match a Service.Name and Slot one of that service's slots.
// Date is an opaque application-formatted string (e.g. "Jan 1, 2024") compared
// by exact equality only.  Patient is the booking owner's email.  The triple
// (treatment, date, patient) is unique; the slot is deliberately not part of
// the key, so a patient cannot book the same treatment twice on one day even
// in a different slot.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment"`
	Date        string             `bson:"date" json:"date"`
	Slot        string             `bson:"slot" json:"slot"`
	Patient     string             `bson:"patient" json:"patient"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
}
