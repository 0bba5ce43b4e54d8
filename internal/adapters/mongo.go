package adapters

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"chessmm/internal/bootstrap"
)

// GamesCollection holds archived games, one document per finished game keyed by game id.
const GamesCollection = "games"

type AdapterMongo struct {
	Client   *mongo.Client
	Database *mongo.Database
	cfg      *bootstrap.Config
	log      *zap.SugaredLogger
}

func NewAdapterMongo(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterMongo {
	return &AdapterMongo{
		cfg: cfg,
		log: log,
	}
}

func mongoClientOptions(cfg *bootstrap.Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.MongoUri).
		SetAppName("chessmm").
		SetServerSelectionTimeout(5 * time.Second)
}

// archiveIndexes serves the archive's "most recently finished first" listing.
func archiveIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "finished_at", Value: -1}},
			Options: options.Index().SetName("finished_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "finished_at", Value: -1}},
			Options: options.Index().SetName("status_finished_at"),
		},
	}
}

// Init connects, selects MONGO_DATABASE and makes sure the archive indexes exist.
// Creating an index that is already there is a no-op on the server.
func (a *AdapterMongo) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoClientOptions(a.cfg))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(a.cfg.MongoDatabase)
	names, err := db.Collection(GamesCollection).Indexes().CreateMany(ctx, archiveIndexes())
	if err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("create %s indexes: %w", GamesCollection, err)
	}

	a.Client = client
	a.Database = db
	a.log.Infow("connected to mongo", "database", a.cfg.MongoDatabase, "indexes", names)
	return nil
}

func (a *AdapterMongo) Close(ctx context.Context) error {
	if a.Client == nil {
		return nil
	}
	err := a.Client.Disconnect(ctx)
	a.Client, a.Database = nil, nil
	return err
}
