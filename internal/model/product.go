package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is one document in the productsData collection. The four booleans
// track the listing lifecycle: advertised, booked, sold, and whether the
// owning seller was verified at upload time.
type Product struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName          string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Image                string             `bson:"image,omitempty" json:"image,omitempty"`
	Description          string             `bson:"description,omitempty" json:"description,omitempty"`
	Location             string             `bson:"location,omitempty" json:"location,omitempty"`
	ResalePrice          string             `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	OriginalPrice        string             `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	YearsOfUse           string             `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Category             string             `bson:"category,omitempty" json:"category,omitempty"`
	Email                string             `bson:"email,omitempty" json:"email,omitempty"`
	SellerName           string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Phone                string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Date                 string             `bson:"date,omitempty" json:"date,omitempty"`
	IsAdvertise          bool               `bson:"isAdvertise" json:"isAdvertise"`
	IsBooking            bool               `bson:"isBooking" json:"isBooking"`
	IsSold               bool               `bson:"isSold" json:"isSold"`
	IsSellerVerification bool               `bson:"isSellerVerification" json:"isSellerVerification"`
}
