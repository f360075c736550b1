package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment rows are append-only; the API never updates or deletes them.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId,omitempty" json:"productId,omitempty"`
	BookingID   string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	PaymentID   string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Price       string             `bson:"price,omitempty" json:"price,omitempty"`
	SellerEmail string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	BuyerEmail  string             `bson:"buyerEmail,omitempty" json:"buyerEmail,omitempty"`
	PaymentTime string             `bson:"paymentTime,omitempty" json:"paymentTime,omitempty"`
}
