package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wishlist entries are deduplicated by productId alone; the buyer email is
// stored but takes no part in the uniqueness check.
type Wishlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price       string             `bson:"price,omitempty" json:"price,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	BuyerEmail  string             `bson:"buyerEmail,omitempty" json:"buyerEmail,omitempty"`
}
