// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements [Store] with one document per key:
// {"_id": "<key>", "value": "<value>"}.
type MongoStore struct {
	collection *mongo.Collection
}

// mongoEntry is the stored document shape.
type mongoEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// NewMongoStore creates a new MongoDB-backed Store on collection.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// Get retrieves the value stored under key.
func (store *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry mongoEntry
	err := store.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("mongo_kv_get_failed: %w", err)
	}
	return entry.Value, true, nil
}

// Set upserts value under key.
func (store *MongoStore) Set(ctx context.Context, key, value string) error {
	_, err := store.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		mongoEntry{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo_kv_set_failed: %w", err)
	}
	return nil
}

// Delete removes key.
func (store *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := store.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo_kv_delete_failed: %w", err)
	}
	return nil
}

// Ping verifies that the primary is reachable.
func (store *MongoStore) Ping(ctx context.Context) error {
	if err := store.collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo_kv_ping_failed: %w", err)
	}
	return nil
}

// Compile-time assertion that MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
