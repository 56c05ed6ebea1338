package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Message   string             `bson:"message" json:"message"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Mobile    string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Timestamp time.Time          `bson:"ts" json:"ts"`
}
