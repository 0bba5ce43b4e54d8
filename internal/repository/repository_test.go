package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	ownErrors "chessmm/internal/errors"
)

func TestSearchKeyString(t *testing.T) {
	k := SearchKey{Hash: 0xabc, Side: chess.Black, Depth: 5}
	if got, want := k.String(), "search:0000000000000abc:black:5"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestMemorySearchCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(2)
	k1 := SearchKey{Hash: 1, Side: chess.White, Depth: 3}

	if _, err := c.Get(ctx, k1); !errors.Is(err, ownErrors.ErrCacheMiss) {
		t.Fatalf("empty cache: err = %v", err)
	}

	want := engine.SearchResult{BestMove: chess.Move{From: chess.Square{Col: 4, Row: 6}, To: chess.Square{Col: 4, Row: 4}}, Score: -15, Depth: 3, Nodes: 42}
	if err := c.Put(ctx, k1, want); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(ctx, k1)
	if err != nil || got != want {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	// Same hash at another depth or side is a different entry.
	if _, err := c.Get(ctx, SearchKey{Hash: 1, Side: chess.White, Depth: 4}); !errors.Is(err, ownErrors.ErrCacheMiss) {
		t.Fatalf("depth must be part of the key")
	}
	if _, err := c.Get(ctx, SearchKey{Hash: 1, Side: chess.Black, Depth: 3}); !errors.Is(err, ownErrors.ErrCacheMiss) {
		t.Fatalf("side must be part of the key")
	}
}

func TestMemorySearchCacheBounded(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySearchCache(2)
	for i := 0; i < 5; i++ {
		_ = c.Put(ctx, SearchKey{Hash: uint64(i)}, engine.SearchResult{Score: i})
		if c.Len() > 2 {
			t.Fatalf("cache grew to %d", c.Len())
		}
	}
	got, err := c.Get(ctx, SearchKey{Hash: 4})
	if err != nil || got.Score != 4 {
		t.Fatalf("latest entry lost: %+v, %v", got, err)
	}
}

func TestMemoryArchive(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryArchive()

	if _, err := a.Get(ctx, "nope"); !errors.Is(err, ownErrors.ErrGameNotFound) {
		t.Fatalf("err = %v, want ErrGameNotFound", err)
	}

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	moves := []string{"e2e4", "e7e5"}
	_ = a.Save(ctx, ArchivedGame{ID: "a", Status: "checkmate", Moves: moves, FinishedAt: base})
	_ = a.Save(ctx, ArchivedGame{ID: "b", Status: "stalemate", FinishedAt: base.Add(time.Minute)})
	_ = a.Save(ctx, ArchivedGame{ID: "c", Status: "checkmate", FinishedAt: base.Add(2 * time.Minute)})
	moves[0] = "mutated"

	g, err := a.Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if g.Moves[0] != "e2e4" {
		t.Fatalf("archive shares the caller's slice")
	}

	recent, err := a.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].ID != "c" || recent[1].ID != "b" {
		t.Fatalf("Recent order wrong: %+v", recent)
	}
}
