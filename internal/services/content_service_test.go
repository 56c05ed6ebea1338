package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/models"
)

// Without MongoDB (database.DB nil) reads degrade to empty results and only
// creation surfaces an error.

func TestListContentWithoutStoreIsEmptyNotError(t *testing.T) {
	items := ListContent(context.Background(), database.ArticlesCollection, ContentFilter{}, 0)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetContentWithoutStore(t *testing.T) {
	_, err := GetContent(context.Background(), database.ArticlesCollection, "64b0c1f2a3d4e5f601234567")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateContentWithoutStore(t *testing.T) {
	item := models.ContentItem{Title: "Drip irrigation", Content: "..."}
	err := CreateContent(context.Background(), database.TechniquesCollection, &item)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestNormalizeContentFallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   models.ContentItem
		want models.ContentItem
	}{
		{
			name: "image_url fills image",
			in:   models.ContentItem{ImageURL: "https://img/x.jpg"},
			want: models.ContentItem{Image: "https://img/x.jpg", ImageURL: "https://img/x.jpg"},
		},
		{
			name: "explicit image wins",
			in:   models.ContentItem{Image: "a.jpg", ImageURL: "b.jpg"},
			want: models.ContentItem{Image: "a.jpg", ImageURL: "b.jpg"},
		},
		{
			name: "excerpt fills description",
			in:   models.ContentItem{Excerpt: "short"},
			want: models.ContentItem{Excerpt: "short", Description: "short"},
		},
		{
			name: "explicit description wins",
			in:   models.ContentItem{Excerpt: "short", Description: "long"},
			want: models.ContentItem{Excerpt: "short", Description: "long"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizeContent(&tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestSubmitContactWithoutStoreKeepsMemoryCopy(t *testing.T) {
	stored, id := SubmitContact(context.Background(), models.ContactMessage{
		Name:    "B",
		Message: "Where can I buy DAP locally?",
	})
	assert.Equal(t, "memory", stored)
	assert.NotEmpty(t, id)

	// The returned id must identify the stored record, not just the response.
	contactMu.Lock()
	defer contactMu.Unlock()
	found := false
	for _, m := range contactMemory {
		if m.ID.Hex() == id {
			found = true
			assert.Equal(t, "B", m.Name)
		}
	}
	assert.True(t, found, "memory copy should carry the returned id")
}
