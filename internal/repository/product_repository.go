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

const productsCollection = "productsData"

type ProductRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewProductRepository(db *mongo.Database, logger *logrus.Logger) *ProductRepository {
	return &ProductRepository{col: db.Collection(productsCollection), log: logger}
}

// byCategoryFilter matches unbooked products of one category. Advertised
// status is not part of the filter.
func byCategoryFilter(category string) bson.M {
	return bson.M{"category": category, "isBooking": false}
}

// advertisedFilter matches products that are advertised and not yet booked.
func advertisedFilter() bson.M {
	return bson.M{"isAdvertise": true, "isBooking": false}
}

func (r *ProductRepository) Insert(ctx context.Context, p model.Product) (*mongo.InsertOneResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		r.log.Errorf("Failed to insert product for %s: %v", p.Email, err)
		return nil, fmt.Errorf("could not insert product: %w", err)
	}
	r.log.Infof("Product created for seller %s", p.Email)
	return res, nil
}

// ListByOwner returns a seller's products, newest first.
func (r *ProductRepository) ListByOwner(ctx context.Context, email string) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		r.log.Errorf("Failed to list products for %s: %v", email, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	cur, err := r.col.Find(ctx, byCategoryFilter(category))
	if err != nil {
		r.log.Errorf("Failed to list products in %s: %v", category, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

// ListAdvertised returns advertised, unbooked products, newest first.
func (r *ProductRepository) ListAdvertised(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, advertisedFilter(), opts)
	if err != nil {
		r.log.Errorf("Failed to list advertised products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("could not decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Errorf("Failed to delete product %s: %v", id, err)
		return nil, fmt.Errorf("could not delete product: %w", err)
	}
	r.log.Infof("Product deleted: %s", id)
	return res, nil
}

func (r *ProductRepository) SetAdvertised(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isAdvertise": true}})
	if err != nil {
		r.log.Errorf("Failed to advertise product %s: %v", id, err)
		return nil, fmt.Errorf("could not advertise product: %w", err)
	}
	return res, nil
}

// MarkBooked sets isBooking on the product. The update is an upsert: an
// unknown id creates a stub document rather than matching nothing.
func (r *ProductRepository) MarkBooked(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isBooking": true}}, opts)
	if err != nil {
		r.log.Errorf("Failed to mark product %s booked: %v", id, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	return res, nil
}

func (r *ProductRepository) ClearBooked(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isBooking": false}})
	if err != nil {
		r.log.Errorf("Failed to clear booking on product %s: %v", id, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	return res, nil
}

func (r *ProductRepository) MarkSold(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isSold": true}})
	if err != nil {
		r.log.Errorf("Failed to mark product %s sold: %v", id, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	return res, nil
}

// VerifyAllByOwner bulk-sets isSellerVerification on every product owned by
// the given email.
func (r *ProductRepository) VerifyAllByOwner(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	res, err := r.col.UpdateMany(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"isSellerVerification": true}})
	if err != nil {
		r.log.Errorf("Failed to verify products of %s: %v", email, err)
		return nil, fmt.Errorf("could not verify products: %w", err)
	}
	r.log.Infof("Verified %d products of %s", res.ModifiedCount, email)
	return res, nil
}
