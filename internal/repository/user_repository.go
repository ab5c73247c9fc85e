package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors-portal-api/internal/model"
)

// ErrUserNotFound is returned when a lookup by email matches no user
// document.  Handlers should translate this into an HTTP 404 response.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides access to the `user` collection.  Users are keyed by
// email throughout: profile writes are upserts on the email filter and role
// grants are plain updates on it.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("user")}
}

// ListAll returns every user document, unfiltered.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := make([]model.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail fetches a user by normalized email.  A missing document is
// reported as ErrUserNotFound rather than surfaced as a raw driver error.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// Upsert applies the supplied profile fields to the user document keyed by
// email, creating it when absent.  Fields not present in profile are left
// untouched; fields present overwrite.  The email field itself always comes
// from the filter so a body cannot re-key the document.
func (r *UserRepo) Upsert(ctx context.Context, email string, profile map[string]any) (UpsertResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	set := bson.M{}
	for k, v := range profile {
		set[k] = v
	}
	set["email"] = email

	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// SetRole updates the role of the user keyed by email.  No upsert: granting a
// role to an email that has no user document matches zero records, mirrored
// back to the caller in MatchedCount.
func (r *UserRepo) SetRole(ctx context.Context, email, role string) (UpsertResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
