package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendRequest is the measurement record submitted for a fertilizer
// recommendation. Numeric fields are intentionally unconstrained on this
// path; the feature aligner tolerates whatever arrives.
type RecommendRequest struct {
	N           float64 `bson:"N" json:"N"`
	P           float64 `bson:"P" json:"P"`
	K           float64 `bson:"K" json:"K"`
	PH          float64 `bson:"pH" json:"pH"`
	Moisture    float64 `bson:"moisture" json:"moisture"`
	Temperature float64 `bson:"temperature" json:"temperature"`
	CropType    string  `bson:"crop_type" json:"crop_type"`
	SoilType    string  `bson:"soil_type" json:"soil_type"`
}

type RecommendationDetails struct {
	Name string `bson:"name" json:"name"`
}

type RecommendResponse struct {
	Fertilizer string                `json:"fertilizer"`
	Details    RecommendationDetails `json:"details"`
}

// Recommendation is the best-effort log row written after each prediction.
type Recommendation struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty" json:"id,omitempty"`
	Timestamp time.Time             `bson:"ts" json:"ts"`
	UserEmail string                `bson:"user_email" json:"user_email"`
	Input     RecommendRequest      `bson:"input" json:"input"`
	Output    RecommendationDetails `bson:"output" json:"output"`
}
