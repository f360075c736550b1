package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

const wishlistCollection = "wishlistData"

type WishlistRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewWishlistRepository(db *mongo.Database, logger *logrus.Logger) *WishlistRepository {
	return &WishlistRepository{col: db.Collection(wishlistCollection), log: logger}
}

// FindByProduct looks an entry up by productId alone, regardless of which
// buyer stored it. Returns (nil, nil) when absent.
func (r *WishlistRepository) FindByProduct(ctx context.Context, productID string) (*model.Wishlist, error) {
	var w model.Wishlist
	err := r.col.FindOne(ctx, bson.M{"productId": productID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Errorf("Failed to look up wishlist entry for product %s: %v", productID, err)
		return nil, fmt.Errorf("could not look up wishlist entry: %w", err)
	}
	return &w, nil
}

func (r *WishlistRepository) Insert(ctx context.Context, w model.Wishlist) (*mongo.InsertOneResult, error) {
	res, err := r.col.InsertOne(ctx, w)
	if err != nil {
		r.log.Errorf("Failed to insert wishlist entry for product %s: %v", w.ProductID, err)
		return nil, fmt.Errorf("could not insert wishlist entry: %w", err)
	}
	r.log.Infof("Wishlist entry created for product %s by %s", w.ProductID, w.BuyerEmail)
	return res, nil
}

func (r *WishlistRepository) ListByBuyer(ctx context.Context, email string) ([]model.Wishlist, error) {
	cur, err := r.col.Find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		r.log.Errorf("Failed to list wishlist for %s: %v", email, err)
		return nil, fmt.Errorf("could not list wishlist: %w", err)
	}
	var entries []model.Wishlist
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("could not decode wishlist: %w", err)
	}
	return entries, nil
}
