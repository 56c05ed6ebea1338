package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sdamera/agriadvisor-backend/internal/database"
	"github.com/sdamera/agriadvisor-backend/internal/models"
	"github.com/sdamera/agriadvisor-backend/pkg/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService is the credential store: it owns registration, password
// verification and identity resolution. Lookups go cache-then-Mongo; writes
// go through both, and a Mongo failure degrades to cache-only so registration
// keeps working while the database is down.
type UserService struct {
	cache *UserCache
}

func NewUserService(cache *UserCache) *UserService {
	return &UserService{cache: cache}
}

// EnsureUserIndexes creates the unique index on email. Called on startup from
// main after Mongo has connected; it serializes the duplicate check at the
// store level so concurrent registrations of the same email can't both land.
func EnsureUserIndexes(ctx context.Context) error {
	col := database.Collection(database.UsersCollection)
	if col == nil {
		return nil
	}
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_email_unique"),
	})
	return err
}

// Register creates a user and reports where the record landed ("db" or
// "memory"). Fails with ErrEmailTaken when the email exists in either tier.
func (s *UserService) Register(ctx context.Context, name, email, password, phone, location string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, ok := s.cache.Get(email); ok {
		return nil, "", ErrEmailTaken
	}
	col := database.Collection(database.UsersCollection)
	if col != nil {
		if err := col.FindOne(ctx, bson.M{"email": email}).Err(); err == nil {
			return nil, "", ErrEmailTaken
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		Location:     location,
		CreatedAt:    time.Now().UTC(),
	}

	stored := "memory"
	if col != nil {
		res, err := col.InsertOne(ctx, user)
		switch {
		case err == nil:
			stored = "db"
			if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
				user.ID = oid
			}
		case mongo.IsDuplicateKeyError(err):
			// Lost a concurrent registration race; the unique index is the
			// authority here.
			return nil, "", ErrEmailTaken
		default:
			log.Printf("❌ users insert failed, keeping memory copy: %v", err)
		}
	}

	s.cache.Put(user)
	return user, stored, nil
}

// Authenticate verifies email+password. Missing user and wrong password both
// come back as ErrInvalidCredentials so login responses can't enumerate
// accounts.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Resolve(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Resolve looks up a user by email, cache first, then Mongo (populating the
// cache on a store hit).
func (s *UserService) Resolve(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if u, ok := s.cache.Get(email); ok {
		return u, nil
	}

	col := database.Collection(database.UsersCollection)
	if col == nil {
		return nil, ErrUserNotFound
	}
	var user models.User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, ErrUserNotFound
	}
	s.cache.Put(&user)
	return &user, nil
}
