package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"chessmm/internal/chess"
	ownErrors "chessmm/internal/errors"
	"chessmm/internal/server/game"
)

// DefaultMaxDepth caps /api/ai_move requests when HandlerConfig leaves MaxDepth unset.
const DefaultMaxDepth = 6

type HandlerConfig struct {
	EngineSide chess.Side // for new games that do not name one
	MaxDepth   int        // largest depth a client may ask for; <= 0 means DefaultMaxDepth
}

// Handler serves the /api/* endpoints on top of a game.Manager.
type Handler struct {
	games      *game.Manager
	log        *zap.SugaredLogger
	engineSide chess.Side
	maxDepth   int
}

func NewHandler(games *game.Manager, log *zap.SugaredLogger, cfg HandlerConfig) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Handler{
		games:      games,
		log:        log,
		engineSide: cfg.EngineSide,
		maxDepth:   cfg.MaxDepth,
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			h.writeError(w, err)
			return
		}
	}

	side := h.engineSide
	if strings.TrimSpace(req.EngineSide) != "" {
		s, err := parseSide(req.EngineSide)
		if err != nil {
			h.writeError(w, err)
			return
		}
		side = s
	}

	var g game.GameState
	if req.FEN != "" {
		pos, err := chess.DecodePosition(req.FEN)
		if err != nil {
			h.writeError(w, err)
			return
		}
		g = h.games.NewGameFrom(pos, side)
	} else {
		g = h.games.NewGame(side)
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req LegalMovesRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	moves, err := h.games.LegalMovesAt(req.GameID, req.Square)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LegalMovesResponse{Square: req.Square, Moves: nonNil(moves)})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	g, err := h.games.Play(r.Context(), req.GameID, req.Move)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(g))
}

func (h *Handler) handleEngineMove(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	g, res, err := h.games.EngineMove(r.Context(), req.GameID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EngineMoveResponse{State: stateToDTO(g), Search: searchToDTO(res)})
}

// handleAiMove only thinks: the position is not stored and no move is applied.
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	// plain minimax cannot be interrupted, so the depth is bounded up front
	if req.Depth < 0 || req.Depth > h.maxDepth {
		h.writeError(w, fmt.Errorf("%w: depth %d outside 0..%d", ownErrors.ErrInvalidRequest, req.Depth, h.maxDepth))
		return
	}
	pos, err := chess.DecodePosition(req.Position)
	if err != nil {
		h.writeError(w, err)
		return
	}
	side := pos.SideToMove
	if req.ToMove != "" {
		s, err := parseSide(req.ToMove)
		if err != nil {
			h.writeError(w, err)
			return
		}
		if s != chess.NoSide {
			side = s
		}
	}

	res := h.games.Analyze(r.Context(), pos, side, req.Depth)
	status := "ok"
	if !res.BestMove.IsValid() {
		status = "no_moves"
	}
	writeJSON(w, http.StatusOK, AiMoveResponse{
		SearchResponse: searchToDTO(res),
		Position:       pos.Encode(),
		ToMove:         side.String(),
		Status:         status,
	})
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			h.writeError(w, err)
			return
		}
		limit = n
	}
	games, err := h.games.Archived(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}
