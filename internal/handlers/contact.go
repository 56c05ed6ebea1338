package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sdamera/agriadvisor-backend/internal/models"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

type contactResponse struct {
	Status string `json:"status"`
	Stored string `json:"stored"`
	ID     string `json:"id,omitempty"`
}

// SubmitContact handles POST /api/contact. The frontend submits JSON but the
// plain HTML fallback posts form-encoded, so the body is tried both ways.
func SubmitContact(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid body")
		return
	}

	fields := map[string]string{}
	var asJSON map[string]interface{}
	if json.Unmarshal(body, &asJSON) == nil {
		for k, v := range asJSON {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
	} else if vals, err := url.ParseQuery(string(body)); err == nil {
		for k := range vals {
			fields[k] = vals.Get(k)
		}
	} else {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid body")
		return
	}

	name := strings.TrimSpace(fields["name"])
	message := strings.TrimSpace(fields["message"])
	if name == "" || message == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "'name' and 'message' are required")
		return
	}

	msg := models.ContactMessage{
		Name:    name,
		Message: message,
		Email:   strings.TrimSpace(fields["email"]),
		Mobile:  strings.TrimSpace(fields["mobile"]),
	}

	stored, id := services.SubmitContact(r.Context(), msg)
	writeJSON(w, http.StatusOK, contactResponse{Status: "ok", Stored: stored, ID: id})
}
