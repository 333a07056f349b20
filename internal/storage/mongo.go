package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Database is the optional primary-storage capability probed by the
// diagnostic endpoint. A nil Database means no database is configured.
type Database interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

type mongoDatabase struct {
	db *mongo.Database
}

// NewMongoDatabase wraps a connected Mongo database as a Database capability
func NewMongoDatabase(db *mongo.Database) Database {
	return &mongoDatabase{db: db}
}

func (m *mongoDatabase) Name() string {
	return m.db.Name()
}

func (m *mongoDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}
