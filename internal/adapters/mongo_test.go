package adapters

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"chessmm/internal/bootstrap"
)

func TestMongoClientOptions(t *testing.T) {
	cfg := &bootstrap.Config{MongoUri: "mongodb://db:27017", MongoDatabase: "chessmm"}
	opts := mongoClientOptions(cfg)
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "db:27017" {
		t.Fatalf("hosts = %v", opts.Hosts)
	}
	if opts.AppName == nil || *opts.AppName != "chessmm" {
		t.Fatalf("app name not set")
	}
	if opts.ServerSelectionTimeout == nil || *opts.ServerSelectionTimeout != 5*time.Second {
		t.Fatalf("server selection timeout not set")
	}
}

func TestArchiveIndexesCoverFinishedAt(t *testing.T) {
	models := archiveIndexes()
	if len(models) == 0 {
		t.Fatal("no indexes")
	}
	keys, ok := models[0].Keys.(bson.D)
	if !ok || len(keys) != 1 || keys[0].Key != "finished_at" || keys[0].Value != -1 {
		t.Fatalf("first index keys = %v", models[0].Keys)
	}
	seen := map[string]bool{}
	for _, m := range models {
		if m.Options == nil || m.Options.Name == nil {
			t.Fatalf("index %v has no name", m.Keys)
		}
		if seen[*m.Options.Name] {
			t.Fatalf("duplicate index name %s", *m.Options.Name)
		}
		seen[*m.Options.Name] = true
	}
}

func TestMongoCloseWithoutInit(t *testing.T) {
	a := NewAdapterMongo(&bootstrap.Config{}, nil)
	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("Close before Init: %v", err)
	}
}
