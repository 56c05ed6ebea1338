package handlers

import (
	"net/http"

	"github.com/sdamera/agriadvisor-backend/internal/database"
)

// Home handles GET /: liveness plus store connectivity, same shape the
// frontend's status banner polls.
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Fertilizer Recommendation API is running",
		"mongo":   database.Available(),
	})
}
