package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sdamera/agriadvisor-backend/internal/middleware"
	"github.com/sdamera/agriadvisor-backend/internal/models"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

var recommendService *services.RecommendService

func InitRecommendHandlers(s *services.RecommendService) {
	recommendService = s
}

// recommendIn uses pointers so missing fields are distinguishable from zero
// measurements; every field is required on this path.
type recommendIn struct {
	N           *float64 `json:"N"`
	P           *float64 `json:"P"`
	K           *float64 `json:"K"`
	PH          *float64 `json:"pH"`
	Moisture    *float64 `json:"moisture"`
	Temperature *float64 `json:"temperature"`
	CropType    *string  `json:"crop_type"`
	SoilType    *string  `json:"soil_type"`
}

// Recommend handles POST /api/recommend/. Auth is optional: an authenticated
// caller gets their email on the logged event, everyone else is "anonymous".
func Recommend(w http.ResponseWriter, r *http.Request) {
	var in recommendIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if in.N == nil || in.P == nil || in.K == nil || in.PH == nil ||
		in.Moisture == nil || in.Temperature == nil || in.CropType == nil || in.SoilType == nil {
		writeDetail(w, http.StatusUnprocessableEntity, "N, P, K, pH, moisture, temperature, crop_type and soil_type are required")
		return
	}

	req := models.RecommendRequest{
		N:           *in.N,
		P:           *in.P,
		K:           *in.K,
		PH:          *in.PH,
		Moisture:    *in.Moisture,
		Temperature: *in.Temperature,
		CropType:    *in.CropType,
		SoilType:    *in.SoilType,
	}

	userEmail := "anonymous"
	if u := middleware.CurrentUser(r); u != nil {
		userEmail = u.Email
	}

	writeJSON(w, http.StatusOK, recommendService.Recommend(req, userEmail))
}
