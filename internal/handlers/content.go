package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/models"
	"github.com/sdamera/agriadvisor-backend/internal/services"
)

// ListArticles handles GET /api/articles
func ListArticles(w http.ResponseWriter, r *http.Request) {
	items := services.ListContent(r.Context(), database.ArticlesCollection, services.ContentFilter{}, 0)
	writeJSON(w, http.StatusOK, items)
}

// GetArticle handles GET /api/articles/{id}
func GetArticle(w http.ResponseWriter, r *http.Request) {
	getContent(w, r, database.ArticlesCollection)
}

// CreateArticle handles POST /api/articles
func CreateArticle(w http.ResponseWriter, r *http.Request) {
	createContent(w, r, database.ArticlesCollection)
}

// ListTechniques handles GET /api/techniques with optional category, tag and
// limit query parameters.
func ListTechniques(w http.ResponseWriter, r *http.Request) {
	filter := services.ContentFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Tag:      strings.TrimSpace(r.URL.Query().Get("tag")),
	}
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	items := services.ListContent(r.Context(), database.TechniquesCollection, filter, limit)
	writeJSON(w, http.StatusOK, items)
}

// GetTechnique handles GET /api/techniques/{id}
func GetTechnique(w http.ResponseWriter, r *http.Request) {
	getContent(w, r, database.TechniquesCollection)
}

// CreateTechnique handles POST /api/techniques
func CreateTechnique(w http.ResponseWriter, r *http.Request) {
	createContent(w, r, database.TechniquesCollection)
}

func getContent(w http.ResponseWriter, r *http.Request, collection string) {
	id := chi.URLParam(r, "id")
	item, err := services.GetContent(r.Context(), collection, id)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func createContent(w http.ResponseWriter, r *http.Request, collection string) {
	var item models.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Content) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "'title' and 'content' are required")
		return
	}

	if !database.Available() {
		writeDetail(w, http.StatusInternalServerError, "DB not configured")
		return
	}
	if err := services.CreateContent(r.Context(), collection, &item); err != nil {
		writeDetail(w, http.StatusInternalServerError, "Insert failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
