// Package repository provides query-by-example access to the portal's
// MongoDB collections.  Each repository wraps one collection behind a small
// set of find/insert/update primitives and translates driver-level errors
// (mongo.ErrNoDocuments, duplicate-key writes) into sentinel values that
// handlers can branch on.
package repository

// UpsertResult mirrors the acknowledgment the store returns for an
// update-with-upsert.  It is sent back to clients verbatim, matching the
// portal's historical response shape for profile upserts and role grants.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// InsertResult carries the store's acknowledgment for a single-document
// insert, exposed to clients in the booking admission response.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}
