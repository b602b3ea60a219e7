package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopstream/storefront/internal/core/ports"
)

const mongoConnectTimeout = 10 * time.Second

// MongoConfig captures the minimal settings required to establish a
// MongoDB connection for the state collection.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// Mongo stores one document per state key: {_id: <key>, value: <bytes>}.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ ports.Storage = (*Mongo)(nil)

type stateDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// NewMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns a storage over the configured collection.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (m *Mongo) Get(key string) ([]byte, error) {
	var doc stateDoc
	err := m.coll.FindOne(context.Background(), bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return doc.Value, nil
}

func (m *Mongo) Set(key string, value []byte) error {
	_, err := m.coll.ReplaceOne(
		context.Background(),
		bson.M{"_id": key},
		stateDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo upsert: %w", err)
	}
	return nil
}

func (m *Mongo) Delete(key string) error {
	if _, err := m.coll.DeleteOne(context.Background(), bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
