package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is one document in the usersData collection. Email is the natural
// key; nothing at the storage level enforces uniqueness.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	IsSeller bool               `bson:"isSeller" json:"isSeller"`
	IsBuyer  bool               `bson:"isBuyer" json:"isBuyer"`
	IsAdmin  bool               `bson:"isAdmin" json:"isAdmin"`
	IsVerify bool               `bson:"isVerify" json:"isVerify"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"`
}
