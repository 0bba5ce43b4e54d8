package game

import (
	"time"

	"chessmm/internal/chess"
)

// GameState is a snapshot of one game. Manager hands out copies, so callers may keep them.
type GameState struct {
	ID         string
	Pos        *chess.Position
	StartFEN   string
	EngineSide chess.Side // chess.NoSide when both sides are human
	Status     chess.Status
	History    []chess.Move
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Winner is the side that delivered mate, chess.NoSide otherwise.
func (g GameState) Winner() chess.Side {
	if g.Status != chess.StatusCheckmate {
		return chess.NoSide
	}
	return g.Pos.SideToMove.Opponent()
}

// EngineToMove reports whether the engine owns the side to move in an unfinished game.
func (g GameState) EngineToMove() bool {
	return !g.Status.Finished() && g.EngineSide != chess.NoSide && g.Pos.SideToMove == g.EngineSide
}

func (g GameState) clone() GameState {
	out := g
	pos := *g.Pos
	out.Pos = &pos
	out.History = append([]chess.Move(nil), g.History...)
	return out
}

func historyStrings(ms []chess.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
