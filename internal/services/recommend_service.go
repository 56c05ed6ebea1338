package services

import (
	"context"
	"time"

	"github.com/sdamera/agriadvisor-backend/internal/classifier"
	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/features"
	"github.com/sdamera/agriadvisor-backend/internal/models"
)

// DefaultFertilizer is returned whenever the model is absent or prediction
// fails. Availability over correctness: /api/recommend/ never errors.
const DefaultFertilizer = "Urea"

// RecommendService runs the inference pipeline: align features to the model
// schema, predict, decode the label, and best-effort log the event.
type RecommendService struct {
	model  *classifier.Model // nil when no bundle was loaded
	schema features.Schema
}

// NewRecommendService resolves the expected-column schema once, at
// construction. model may be nil.
func NewRecommendService(model *classifier.Model) *RecommendService {
	s := &RecommendService{model: model}
	if model != nil {
		s.schema = features.ResolveSchema(model.FeatureNames)
	}
	return s
}

// Recommend never fails: any alignment or prediction problem degrades to
// DefaultFertilizer. userEmail identifies the caller in the log row and is
// "anonymous" for unauthenticated requests.
func (s *RecommendService) Recommend(req models.RecommendRequest, userEmail string) models.RecommendResponse {
	fertilizer := DefaultFertilizer

	if s.model != nil {
		vec := features.Align(req, s.schema)
		class, err := s.model.Predict(vec)
		if err != nil {
			// Schema-aligned vector rejected; retry with the minimal form.
			class, err = s.model.Predict(features.MinimalVector(req))
		}
		if err == nil {
			fertilizer = s.model.Label(class)
		}
	}

	details := models.RecommendationDetails{Name: fertilizer}
	s.logRecommendation(req, details, userEmail)

	return models.RecommendResponse{Fertilizer: fertilizer, Details: details}
}

// logRecommendation persists the event to the recommendations collection
// asynchronously. Fire-and-forget: a logging failure must never fail the
// recommendation response.
func (s *RecommendService) logRecommendation(req models.RecommendRequest, details models.RecommendationDetails, userEmail string) {
	col := database.Collection(database.RecommendationsCollection)
	if col == nil {
		return
	}
	rec := models.Recommendation{
		Timestamp: time.Now().UTC(),
		UserEmail: userEmail,
		Input:     req,
		Output:    details,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = col.InsertOne(ctx, rec)
	}()
}
