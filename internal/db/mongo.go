package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peas8810/ojs/internal/config"
	"github.com/peas8810/ojs/internal/models"
)

// Archive keeps one history record per successful update run. It is optional
// infrastructure: the JSON snapshot file stays the only mandated output.
type Archive struct {
	client  *mongo.Client
	history *mongo.Collection
}

func NewArchive(cfg config.DBConfig) (*Archive, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Connection))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %v", err)
	}

	return &Archive{
		client:  client,
		history: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (a *Archive) SaveEntry(entry *models.ArchiveEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := a.history.InsertOne(ctx, entry)
	return err
}

func (a *Archive) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.client.Disconnect(ctx)
}
