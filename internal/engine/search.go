package engine

import (
	"chessmm/internal/chess"
)

const (
	// DefaultDepth is the search horizon in plies when none is configured.
	DefaultDepth = 5

	// MateScore is the base magnitude of a checkmate; remaining depth is added on top.
	MateScore = 1_000_000

	// larger than any mate score, used as +/- infinity
	scoreInf = 1_000_000_000
)

type EvaluatedMove struct {
	Move  chess.Move `json:"move"`
	Score int        `json:"score"`
}

// Minimax searches depth plies ahead for side with plain minimax.
// Black maximises and White minimises; leaves are evaluated from the side to move
// at the leaf. When side has no legal move the result carries chess.NoMove.
func Minimax(pos *chess.Position, side chess.Side, depth int) EvaluatedMove {
	var nodes int64
	return minimax(pos, side, chess.NoMove, depth, &nodes)
}

func minimax(pos *chess.Position, side chess.Side, last chess.Move, depth int, nodes *int64) EvaluatedMove {
	*nodes++

	if depth <= 0 {
		return EvaluatedMove{Move: last, Score: Evaluate(pos, side)}
	}

	moves := pos.GenerateLegalMovesForSide(side)
	if len(moves) == 0 {
		return terminalScore(pos, side, depth)
	}
	if pos.SideToMove != side {
		pos = pos.WithSideToMove(side)
	}

	best := EvaluatedMove{Move: chess.NoMove, Score: initialBest(side)}
	enemy := side.Opponent()
	for _, mv := range moves {
		res := minimax(pos.ApplyMove(mv), enemy, mv, depth-1, nodes)
		if improves(side, res.Score, best.Score) {
			best = EvaluatedMove{Move: mv, Score: res.Score}
		}
	}
	return best
}

// terminalScore handles a node without legal moves: checkmate is scored by
// colour and shifted by the remaining depth, stalemate is 0.
func terminalScore(pos *chess.Position, side chess.Side, depth int) EvaluatedMove {
	if !pos.IsInCheck(side) {
		return EvaluatedMove{Move: chess.NoMove, Score: 0}
	}
	if side == chess.White {
		return EvaluatedMove{Move: chess.NoMove, Score: -MateScore - depth}
	}
	return EvaluatedMove{Move: chess.NoMove, Score: MateScore + depth}
}

func initialBest(side chess.Side) int {
	if side == chess.Black {
		return -scoreInf
	}
	return scoreInf
}

// improves is strict so the first move reaching the best score is kept.
func improves(side chess.Side, score, best int) bool {
	if side == chess.Black {
		return score > best
	}
	return score < best
}
