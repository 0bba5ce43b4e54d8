package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"chessmm/internal/adapters"
	ownErrors "chessmm/internal/errors"
)

type MongoArchive struct {
	mongo *mongo.Database
	log   *zap.SugaredLogger
}

func NewMongoArchive(db *mongo.Database, log *zap.SugaredLogger) *MongoArchive {
	return &MongoArchive{
		mongo: db,
		log:   log,
	}
}

func (m *MongoArchive) Save(ctx context.Context, g ArchivedGame) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := m.mongo.Collection(adapters.GamesCollection)
	filter := bson.M{"_id": g.ID}
	_, err := collection.ReplaceOne(ctx, filter, g, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("archive game %s: %w", g.ID, err)
	}

	m.log.Infow("game archived", "game_id", g.ID, "status", g.Status, "moves", len(g.Moves))
	return nil
}

func (m *MongoArchive) Get(ctx context.Context, id string) (ArchivedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var g ArchivedGame
	err := m.mongo.Collection(adapters.GamesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ArchivedGame{}, ownErrors.ErrGameNotFound
	}
	if err != nil {
		return ArchivedGame{}, fmt.Errorf("find game %s: %w", id, err)
	}
	return g, nil
}

func (m *MongoArchive) Recent(ctx context.Context, limit int) ([]ArchivedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "finished_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := m.mongo.Collection(adapters.GamesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cursor.Close(ctx)

	var out []ArchivedGame
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	return out, nil
}
