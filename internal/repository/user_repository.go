package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

const usersCollection = "usersData"

type UserRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewUserRepository(db *mongo.Database, logger *logrus.Logger) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection), log: logger}
}

// FindByEmail returns (nil, nil) when no user document matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Errorf("Failed to look up user %s: %v", email, err)
		return nil, fmt.Errorf("could not look up user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Insert(ctx context.Context, u model.User) (*mongo.InsertOneResult, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		r.log.Errorf("Failed to insert user %s: %v", u.Email, err)
		return nil, fmt.Errorf("could not insert user: %w", err)
	}
	r.log.Infof("User created: %s", u.Email)
	return res, nil
}

// ListByRole lists users whose given role flag is true, newest first.
// flag is the document field name: isSeller or isBuyer.
func (r *UserRepository) ListByRole(ctx context.Context, flag string) ([]model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{flag: true}, opts)
	if err != nil {
		r.log.Errorf("Failed to list users by %s: %v", flag, err)
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("could not decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Errorf("Failed to delete user %s: %v", id, err)
		return nil, fmt.Errorf("could not delete user: %w", err)
	}
	r.log.Infof("User deleted: %s", id)
	return res, nil
}

// SetVerified flips isVerify on the user with the given email.
func (r *UserRepository) SetVerified(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"isVerify": true}})
	if err != nil {
		r.log.Errorf("Failed to verify user %s: %v", email, err)
		return nil, fmt.Errorf("could not verify user: %w", err)
	}
	r.log.Infof("User verified: %s", email)
	return res, nil
}
