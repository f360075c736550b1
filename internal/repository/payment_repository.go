package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/model"
)

const paymentsCollection = "paymentsData"

type PaymentRepository struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewPaymentRepository(db *mongo.Database, logger *logrus.Logger) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(paymentsCollection), log: logger}
}

func (r *PaymentRepository) Insert(ctx context.Context, p model.Payment) (*mongo.InsertOneResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		r.log.Errorf("Failed to insert payment for product %s: %v", p.ProductID, err)
		return nil, fmt.Errorf("could not insert payment: %w", err)
	}
	r.log.Infof("Payment recorded for product %s (%s)", p.ProductID, p.PaymentID)
	return res, nil
}

func (r *PaymentRepository) ListBySeller(ctx context.Context, email string) ([]model.Payment, error) {
	cur, err := r.col.Find(ctx, bson.M{"sellerEmail": email})
	if err != nil {
		r.log.Errorf("Failed to list payments for %s: %v", email, err)
		return nil, fmt.Errorf("could not list payments: %w", err)
	}
	var payments []model.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("could not decode payments: %w", err)
	}
	return payments, nil
}
