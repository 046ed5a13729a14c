package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

const (
	DatabaseName   = "stylist"
	CollectionName = "collections"
)

// mongoDoc is the stored form: one document per (user, key) pair. Values are
// kept as raw JSON so the store stays schema-agnostic across collections.
type mongoDoc struct {
	UserID    string    `bson:"user_id"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore persists user collections in MongoDB
type MongoStore struct{}

// NewMongoStore returns a Store backed by the shared Mongo client
func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

func (s *MongoStore) collection() *mongo.Collection {
	return utils.GetCollection(DatabaseName, CollectionName)
}

func (s *MongoStore) Get(ctx context.Context, userID, key string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc mongoDoc
	err := s.collection().FindOne(ctx, bson.M{"user_id": userID, "key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %q for user %s: %w", key, userID, err)
	}

	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		return fmt.Errorf("failed to decode %q for user %s: %w", key, userID, err)
	}
	return nil
}

func (s *MongoStore) Set(ctx context.Context, userID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "key": key}
	update := bson.M{"$set": mongoDoc{
		UserID:    userID,
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}}
	_, err = s.collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write %q for user %s: %w", key, userID, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, userID, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.collection().DeleteOne(ctx, bson.M{"user_id": userID, "key": key})
	if err != nil {
		return fmt.Errorf("failed to delete %q for user %s: %w", key, userID, err)
	}
	return nil
}
