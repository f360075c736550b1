package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking references its product by the hex string the client sends, not an
// ObjectID, matching how the documents were written historically.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price       string             `bson:"price,omitempty" json:"price,omitempty"`
	BuyerName   string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	BuyerEmail  string             `bson:"buyerEmail,omitempty" json:"buyerEmail,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	BookingTime string             `bson:"bookingTime,omitempty" json:"bookingTime,omitempty"`
	IsPaid      bool               `bson:"isPaid" json:"isPaid"`
}
