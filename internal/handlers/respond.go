package handlers

import (
	"encoding/json"
	"net/http"
)

// detailResponse is the error shape the frontend consumes: {"detail": "..."}.
// Internal diagnostics stay in the server log, never in the body.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
