package httpserver

import (
	"fmt"
	"strconv"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	ownErrors "chessmm/internal/errors"
	"chessmm/internal/server/game"
)

type NewGameRequest struct {
	EngineSide string `json:"engine_side"` // "white", "black", "none"; empty = server default
	FEN        string `json:"fen"`         // optional start position
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type LegalMovesRequest struct {
	GameID string       `json:"game_id"`
	Square chess.Square `json:"square"`
}

type LegalMovesResponse struct {
	Square chess.Square `json:"square"`
	Moves  []chess.Move `json:"moves"`
}

type PlayRequest struct {
	GameID string     `json:"game_id"`
	Move   chess.Move `json:"move"`
}

// AiMoveRequest asks for analysis of an arbitrary position, no game involved.
type AiMoveRequest struct {
	Position string `json:"position"` // FEN
	ToMove   string `json:"to_move"`  // overrides the FEN side when set
	Depth    int    `json:"depth"`
}

type StateResponse struct {
	GameID       string       `json:"game_id"`
	Position     string       `json:"position"`
	ToMove       string       `json:"to_move"`
	Status       string       `json:"status"`
	Winner       string       `json:"winner,omitempty"`
	EngineSide   string       `json:"engine_side"`
	EngineToMove bool         `json:"engine_to_move"`
	LegalMoves   []chess.Move `json:"legal_moves"`
	History      []chess.Move `json:"history"`
}

type SearchResponse struct {
	BestMove chess.Move `json:"best_move"`
	Score    int        `json:"score"`
	Depth    int        `json:"depth"`
	Nodes    int64      `json:"nodes"`
	TimeMs   int64      `json:"time_ms"`
}

type EngineMoveResponse struct {
	State  StateResponse  `json:"state"`
	Search SearchResponse `json:"search"`
}

type AiMoveResponse struct {
	SearchResponse
	Position string `json:"position"`
	ToMove   string `json:"to_move"`
	Status   string `json:"status"` // "ok" or "no_moves"
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func stateToDTO(g game.GameState) StateResponse {
	resp := StateResponse{
		GameID:       g.ID,
		Position:     g.Pos.Encode(),
		ToMove:       g.Pos.SideToMove.String(),
		Status:       string(g.Status),
		EngineSide:   g.EngineSide.String(),
		EngineToMove: g.EngineToMove(),
		LegalMoves:   nonNil(g.Pos.GenerateLegalMoves()),
		History:      nonNil(g.History),
	}
	if w := g.Winner(); w != chess.NoSide {
		resp.Winner = w.String()
	}
	return resp
}

func searchToDTO(res engine.SearchResult) SearchResponse {
	return SearchResponse{
		BestMove: res.BestMove,
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
	}
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil(ms []chess.Move) []chess.Move {
	if ms == nil {
		return []chess.Move{}
	}
	return ms
}

func parseSide(s string) (chess.Side, error) {
	side, ok := chess.ParseSide(s)
	if !ok {
		return chess.NoSide, fmt.Errorf("%w: unknown side %q", ownErrors.ErrInvalidRequest, s)
	}
	return side, nil
}

func parseLimit(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > 1000 {
		return 0, fmt.Errorf("%w: bad limit %q", ownErrors.ErrInvalidRequest, v)
	}
	return n, nil
}
