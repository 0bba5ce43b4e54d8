package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	ownErrors "chessmm/internal/errors"
)

// ArchivedGame is a finished game as stored in the archive.
type ArchivedGame struct {
	ID         string    `json:"id" bson:"_id"`
	EngineSide string    `json:"engine_side" bson:"engine_side"`
	StartFEN   string    `json:"start_fen" bson:"start_fen"`
	FinalFEN   string    `json:"final_fen" bson:"final_fen"`
	Moves      []string  `json:"moves" bson:"moves"`
	Status     string    `json:"status" bson:"status"`
	Winner     string    `json:"winner,omitempty" bson:"winner,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	FinishedAt time.Time `json:"finished_at" bson:"finished_at"`
}

type GameArchive interface {
	Save(ctx context.Context, g ArchivedGame) error
	// Get returns ownErrors.ErrGameNotFound for unknown ids.
	Get(ctx context.Context, id string) (ArchivedGame, error)
	// Recent lists up to limit games, most recently finished first.
	Recent(ctx context.Context, limit int) ([]ArchivedGame, error)
}

type MemoryArchive struct {
	mu    sync.RWMutex
	games map[string]ArchivedGame
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{games: make(map[string]ArchivedGame)}
}

func (a *MemoryArchive) Save(_ context.Context, g ArchivedGame) error {
	g.Moves = append([]string(nil), g.Moves...)
	a.mu.Lock()
	a.games[g.ID] = g
	a.mu.Unlock()
	return nil
}

func (a *MemoryArchive) Get(_ context.Context, id string) (ArchivedGame, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	g, ok := a.games[id]
	if !ok {
		return ArchivedGame{}, ownErrors.ErrGameNotFound
	}
	return g, nil
}

func (a *MemoryArchive) Recent(_ context.Context, limit int) ([]ArchivedGame, error) {
	a.mu.RLock()
	out := make([]ArchivedGame, 0, len(a.games))
	for _, g := range a.games {
		out = append(out, g)
	}
	a.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].FinishedAt.Equal(out[j].FinishedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
