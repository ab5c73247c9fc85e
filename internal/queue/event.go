// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking passes admission and is
// inserted.  It carries enough information for downstream consumers to log
// or notify without querying the primary database.
type BookingConfirmedEvent struct {
	Treatment   string `json:"treatment"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Patient     string `json:"patient"`
	ConfirmedAt string `json:"confirmed_at"`
}
