package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

// Store interfaces are declared on the consumer side; the mongo-backed
// implementations live in internal/repository. Lookups return (nil, nil)
// when no document matches.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u model.User) (*mongo.InsertOneResult, error)
	ListByRole(ctx context.Context, flag string) ([]model.User, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetVerified(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

type ProductStore interface {
	Insert(ctx context.Context, p model.Product) (*mongo.InsertOneResult, error)
	ListByOwner(ctx context.Context, email string) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListAdvertised(ctx context.Context) ([]model.Product, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetAdvertised(ctx context.Context, id string) (*mongo.UpdateResult, error)
	MarkBooked(ctx context.Context, id string) (*mongo.UpdateResult, error)
	ClearBooked(ctx context.Context, id string) (*mongo.UpdateResult, error)
	MarkSold(ctx context.Context, id string) (*mongo.UpdateResult, error)
	VerifyAllByOwner(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

type CategoryStore interface {
	List(ctx context.Context, limit int64) ([]model.Category, error)
	Count(ctx context.Context) (int64, error)
}

type BookingStore interface {
	Insert(ctx context.Context, b model.Booking) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	ListByBuyer(ctx context.Context, email string) ([]model.Booking, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	MarkPaid(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, p model.Payment) (*mongo.InsertOneResult, error)
	ListBySeller(ctx context.Context, email string) ([]model.Payment, error)
}

type WishlistStore interface {
	FindByProduct(ctx context.Context, productID string) (*model.Wishlist, error)
	Insert(ctx context.Context, w model.Wishlist) (*mongo.InsertOneResult, error)
	ListByBuyer(ctx context.Context, email string) ([]model.Wishlist, error)
}

// IntentCreator creates a charge intent at the payment provider and returns
// its client secret. The amount is in minor currency units.
type IntentCreator interface {
	Create(ctx context.Context, amount int64) (string, error)
}
