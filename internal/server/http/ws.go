package httpserver

import (
	"net/http"

	"github.com/gorilla/websocket"

	"chessmm/internal/chess"
	ownErrors "chessmm/internal/errors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is what the client sends: {"type":"move","move":{...}} or {"type":"state"}.
type wsMessage struct {
	Type string     `json:"type"`
	Move chess.Move `json:"move"`
}

// wsEvent is what the server pushes after every change.
type wsEvent struct {
	Type   string          `json:"type"` // "state" or "error"
	State  *StateResponse  `json:"state,omitempty"`
	Search *SearchResponse `json:"search,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// handleGameStream plays a game over a websocket. The client sends its moves,
// the server answers with the new state and, when the engine owns the next turn,
// with the engine's reply as a second state event.
func (h *Handler) handleGameStream(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		h.writeError(w, ownErrors.ErrInvalidRequest)
		return
	}
	g, err := h.games.Get(gameID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "game_id", gameID, "error", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	st := stateToDTO(g)
	if err := conn.WriteJSON(wsEvent{Type: "state", State: &st}); err != nil {
		return
	}
	if !h.engineReply(conn, r, gameID) {
		return
	}

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debugw("websocket read", "game_id", gameID, "error", err)
			}
			return
		}

		switch msg.Type {
		case "move":
			g, err := h.games.Play(ctx, gameID, msg.Move)
			if err != nil {
				if conn.WriteJSON(wsEvent{Type: "error", Error: err.Error()}) != nil {
					return
				}
				continue
			}
			st := stateToDTO(g)
			if err := conn.WriteJSON(wsEvent{Type: "state", State: &st}); err != nil {
				return
			}
			if !h.engineReply(conn, r, gameID) {
				return
			}
		case "state":
			g, err := h.games.Get(gameID)
			if err != nil {
				_ = conn.WriteJSON(wsEvent{Type: "error", Error: err.Error()})
				return
			}
			st := stateToDTO(g)
			if err := conn.WriteJSON(wsEvent{Type: "state", State: &st}); err != nil {
				return
			}
		default:
			if conn.WriteJSON(wsEvent{Type: "error", Error: "unknown message type " + msg.Type}) != nil {
				return
			}
		}
	}
}

// engineReply plays the engine's move if it is the engine's turn. It returns false
// once the connection is unusable.
func (h *Handler) engineReply(conn *websocket.Conn, r *http.Request, gameID string) bool {
	g, err := h.games.Get(gameID)
	if err != nil || !g.EngineToMove() {
		return err == nil
	}
	g, res, err := h.games.EngineMove(r.Context(), gameID)
	if err != nil {
		return conn.WriteJSON(wsEvent{Type: "error", Error: err.Error()}) == nil
	}
	st := stateToDTO(g)
	sr := searchToDTO(res)
	return conn.WriteJSON(wsEvent{Type: "state", State: &st, Search: &sr}) == nil
}
