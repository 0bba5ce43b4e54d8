package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chessmm/internal/chess"
)

type SearchConfig struct {
	Depth   int // plies; <= 0 means DefaultDepth
	Workers int // root moves searched concurrently; <= 1 is sequential
}

type SearchResult struct {
	BestMove chess.Move    // chess.NoMove when the side has no legal move
	Score    int           // Black-maximising scale, see Minimax
	Depth    int           // depth actually used
	Nodes    int64         // nodes visited
	TimeUsed time.Duration // wall time
}

// Engine wraps Minimax with node counting, optional root parallelism and logging.
// It holds no per-search state, so one Engine may serve concurrent callers.
type Engine struct {
	log *zap.SugaredLogger
}

func NewEngine(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{log: log}
}

// Search picks a move for side. The result is identical for any Workers value:
// root children are collected by index and compared in generation order.
func (e *Engine) Search(pos *chess.Position, side chess.Side, cfg SearchConfig) SearchResult {
	depth := cfg.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	start := time.Now()

	var best EvaluatedMove
	var nodes int64
	if cfg.Workers > 1 {
		best, nodes = e.searchRootParallel(pos, side, depth, cfg.Workers)
	} else {
		best = minimax(pos, side, chess.NoMove, depth, &nodes)
	}

	res := SearchResult{
		BestMove: best.Move,
		Score:    best.Score,
		Depth:    depth,
		Nodes:    nodes,
		TimeUsed: time.Since(start),
	}
	e.log.Debugw("search finished",
		"side", side.String(),
		"depth", depth,
		"move", res.BestMove.String(),
		"score", res.Score,
		"nodes", res.Nodes,
		"elapsed", res.TimeUsed,
	)
	return res
}

func (e *Engine) searchRootParallel(pos *chess.Position, side chess.Side, depth, workers int) (EvaluatedMove, int64) {
	var nodes int64
	moves := pos.GenerateLegalMovesForSide(side)
	if len(moves) == 0 {
		nodes = 1
		return terminalScore(pos, side, depth), nodes
	}
	if pos.SideToMove != side {
		pos = pos.WithSideToMove(side)
	}

	results := make([]EvaluatedMove, len(moves))
	enemy := side.Opponent()

	var g errgroup.Group
	g.SetLimit(workers)
	for i, mv := range moves {
		i, mv := i, mv
		child := pos.ApplyMove(mv)
		g.Go(func() error {
			var local int64
			results[i] = minimax(child, enemy, mv, depth-1, &local)
			atomic.AddInt64(&nodes, local)
			return nil
		})
	}
	_ = g.Wait()

	best := EvaluatedMove{Move: chess.NoMove, Score: initialBest(side)}
	for i, mv := range moves {
		if improves(side, results[i].Score, best.Score) {
			best = EvaluatedMove{Move: mv, Score: results[i].Score}
		}
	}
	return best, atomic.AddInt64(&nodes, 1)
}
