package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ContentFilter narrows technique listings. Zero value matches everything.
type ContentFilter struct {
	Category string
	Tag      string
}

// contentDoc pairs the raw _id with the typed fields so both store-generated
// ObjectIDs and externally supplied string keys decode.
type contentDoc struct {
	RawID              interface{} `bson:"_id,omitempty"`
	models.ContentItem `bson:",inline"`
}

func (d *contentDoc) item() models.ContentItem {
	it := d.ContentItem
	switch id := d.RawID.(type) {
	case primitive.ObjectID:
		it.ID = id.Hex()
	case string:
		it.ID = id
	case nil:
	default:
		it.ID = fmt.Sprintf("%v", id)
	}
	return it
}

// ListContent returns items newest-first. The empty slice (never an error) is
// the degraded result when Mongo is down or the query fails.
func ListContent(ctx context.Context, collection string, filter ContentFilter, limit int64) []models.ContentItem {
	out := make([]models.ContentItem, 0)

	col := database.Collection(collection)
	if col == nil {
		return out
	}

	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.Tag != "" {
		q["tags"] = bson.M{"$in": []string{filter.Tag}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := col.Find(ctx, q, opts)
	if err != nil {
		log.Printf("❌ list %s failed: %v", collection, err)
		return out
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var d contentDoc
		if err := cur.Decode(&d); err != nil {
			continue
		}
		out = append(out, d.item())
	}
	if err := cur.Err(); err != nil {
		log.Printf("❌ list %s cursor failed: %v", collection, err)
	}
	return out
}

// GetContent looks an item up by id, trying the structured ObjectID form
// first and falling back to treating id as an opaque string key.
func GetContent(ctx context.Context, collection, id string) (models.ContentItem, error) {
	col := database.Collection(collection)
	if col == nil {
		return models.ContentItem{}, ErrNotFound
	}

	var d contentDoc
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err == nil {
			return d.item(), nil
		}
		return models.ContentItem{}, ErrNotFound
	}
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err == nil {
		return d.item(), nil
	}
	if err := col.FindOne(ctx, bson.M{"id": id}).Decode(&d); err == nil {
		return d.item(), nil
	}
	return models.ContentItem{}, ErrNotFound
}

// CreateContent normalizes the image/description fallbacks and inserts the
// item. Unlike reads, creation has no safe degraded result, so a missing or
// failing store surfaces as ErrStoreUnavailable.
func CreateContent(ctx context.Context, collection string, item *models.ContentItem) error {
	normalizeContent(item)

	col := database.Collection(collection)
	if col == nil {
		return ErrStoreUnavailable
	}

	res, err := col.InsertOne(ctx, item)
	if err != nil {
		log.Printf("❌ create %s failed: %v", collection, err)
		return ErrStoreUnavailable
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

// normalizeContent applies the write-time fallbacks: the frontend reads
// image/description, seeds and API clients often supply image_url/excerpt.
func normalizeContent(item *models.ContentItem) {
	if item.Image == "" && item.ImageURL != "" {
		item.Image = item.ImageURL
	}
	if item.Description == "" && item.Excerpt != "" {
		item.Description = item.Excerpt
	}
}
