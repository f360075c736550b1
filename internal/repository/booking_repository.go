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

const bookingsCollection = "bookingsData"

type BookingRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewBookingRepository(db *mongo.Database, logger *logrus.Logger) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection), log: logger}
}

func (r *BookingRepository) Insert(ctx context.Context, b model.Booking) (*mongo.InsertOneResult, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		r.log.Errorf("Failed to insert booking for product %s: %v", b.ProductID, err)
		return nil, fmt.Errorf("could not insert booking: %w", err)
	}
	r.log.Infof("Booking created for product %s by %s", b.ProductID, b.BuyerEmail)
	return res, nil
}

// FindByID returns (nil, nil) when no booking document matches.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	var b model.Booking
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Errorf("Failed to look up booking %s: %v", id, err)
		return nil, fmt.Errorf("could not look up booking: %w", err)
	}
	return &b, nil
}

// ListByBuyer returns a buyer's bookings, most recent booking time first.
func (r *BookingRepository) ListByBuyer(ctx context.Context, email string) ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookingTime", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"buyerEmail": email}, opts)
	if err != nil {
		r.log.Errorf("Failed to list bookings for %s: %v", email, err)
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}
	var bookings []model.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("could not decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Errorf("Failed to delete booking %s: %v", id, err)
		return nil, fmt.Errorf("could not delete booking: %w", err)
	}
	r.log.Infof("Booking deleted: %s", id)
	return res, nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isPaid": true}})
	if err != nil {
		r.log.Errorf("Failed to mark booking %s paid: %v", id, err)
		return nil, fmt.Errorf("could not update booking: %w", err)
	}
	return res, nil
}
