package services

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/models"
)

// Memory fallback for contact messages when Mongo is down. Process lifetime
// only; the submit response tells the client which tier took the write.
var (
	contactMu     sync.Mutex
	contactMemory []models.ContactMessage
)

// SubmitContact stores a contact message, preferring Mongo. Returns the
// storage tier ("db" or "memory") and the assigned id.
func SubmitContact(ctx context.Context, msg models.ContactMessage) (stored, id string) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	col := database.Collection(database.ContactsCollection)
	if col != nil {
		res, err := col.InsertOne(ctx, msg)
		if err == nil {
			if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
				return "db", oid.Hex()
			}
			return "db", ""
		}
		log.Printf("❌ contacts insert failed, keeping memory copy: %v", err)
	}

	// Mint the id up front so the stored record and the response agree.
	msg.ID = primitive.NewObjectID()
	contactMu.Lock()
	contactMemory = append(contactMemory, msg)
	contactMu.Unlock()
	return "memory", msg.ID.Hex()
}
