package models

// ContentItem is an article or farming technique. The two collections share
// one shape; the frontend reads either image or image_url and either
// description or excerpt, so writes normalize the fallbacks (see
// services.CreateContent).
type ContentItem struct {
	// Store-assigned key, surfaced to clients as a string. Filled by the
	// content service after reads/inserts; never written as a field.
	ID string `bson:"-" json:"id,omitempty"`

	Title       string   `bson:"title" json:"title"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	ImageURL    string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Excerpt     string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Content     string   `bson:"content" json:"content"`
	Author      string   `bson:"author,omitempty" json:"author,omitempty"`
	PublishedAt string   `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
}
