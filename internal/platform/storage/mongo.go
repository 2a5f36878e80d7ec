package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "collections"

// collectionDocument is one named collection stored as a JSON string.
type collectionDocument struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and keeps collections in <database>.collections.
func NewMongoStore(ctx context.Context, uri, database string) (Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return newDocumentStore("mongo", &mongoBackend{
		client: client,
		coll:   client.Database(database).Collection(mongoCollection),
	}), nil
}

func (b *mongoBackend) get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc collectionDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Data), true, nil
}

func (b *mongoBackend) put(ctx context.Context, key string, data []byte) error {
	doc := collectionDocument{ID: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (b *mongoBackend) ping(ctx context.Context) error {
	return b.client.Ping(ctx, nil)
}

func (b *mongoBackend) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}
