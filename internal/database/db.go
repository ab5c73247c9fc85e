package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Open connects to MongoDB and verifies the connection.  The returned client
// owns a pooled connection shared by every repository; callers are expected
// to Disconnect it on shutdown.
func Open(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetConnectTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// Ping with timeout
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the application relies on.  The booking
// collection carries a unique index on (treatment, date, patient) so that two
// concurrent identical booking requests cannot both insert: the loser fails
// with a duplicate-key error that the repository maps to ErrDuplicateBooking.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("booking").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_treatment_date_patient"),
	})
	return err
}
