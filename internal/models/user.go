package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"` // lower-cased, unique identity key
	PasswordHash string `bson:"password_hash" json:"-"`

	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}
