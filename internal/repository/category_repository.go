package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

const categoriesCollection = "categoriesData"

type CategoryRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewCategoryRepository(db *mongo.Database, logger *logrus.Logger) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(categoriesCollection), log: logger}
}

// List returns up to limit categories; limit <= 0 means no limit.
func (r *CategoryRepository) List(ctx context.Context, limit int64) ([]model.Category, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	var categories []model.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("could not decode categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.log.Errorf("Failed to count categories: %v", err)
		return 0, fmt.Errorf("could not count categories: %w", err)
	}
	return n, nil
}
