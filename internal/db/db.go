package db

import (
	"context"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the Mongo client for the whole process. Ready reports the
// result of the initial ping; it is a point-in-time check, not a guard
// against mid-request disconnection.
type Store struct {
	client *mongo.Client
	ready  atomic.Bool
}

func Connect(uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	s := &Store{client: client}
	s.ready.Store(true)
	return s, nil
}

func (s *Store) Ready() bool {
	return s.ready.Load()
}

func (s *Store) GetCollection(dbName, name string) *mongo.Collection {
	return s.client.Database(dbName).Collection(name)
}

func (s *Store) Disconnect(ctx context.Context) error {
	s.ready.Store(false)
	return s.client.Disconnect(ctx)
}
