package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	"chessmm/internal/server/game"
)

func sq(name string) chess.Square {
	return chess.Square{Col: int(name[0] - 'a'), Row: int('8' - name[1])}
}

func mv(s string) chess.Move {
	return chess.Move{From: sq(s[:2]), To: sq(s[2:])}
}

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	mgr := game.NewManager(nil, engine.SearchConfig{Depth: 2}, nil, nil, nil)
	return NewRouter(NewHandler(mgr, nil, HandlerConfig{EngineSide: chess.Black, MaxDepth: 4}), opts)
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func newGame(t *testing.T, h http.Handler, req NewGameRequest) StateResponse {
	t.Helper()
	rec := post(t, h, "/api/new_game", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game: %d %s", rec.Code, rec.Body.String())
	}
	return decodeBody[StateResponse](t, rec)
}

func TestNewGame(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	st := newGame(t, h, NewGameRequest{})
	if st.GameID == "" || st.ToMove != "white" || st.Status != "ongoing" {
		t.Fatalf("unexpected state %+v", st)
	}
	if st.EngineSide != "black" || st.EngineToMove || len(st.LegalMoves) != 20 || len(st.History) != 0 {
		t.Fatalf("unexpected state %+v", st)
	}

	st = newGame(t, h, NewGameRequest{EngineSide: "none", FEN: "4k3/8/8/8/8/8/8/4K2R b"})
	if st.EngineSide != "none" || st.ToMove != "black" || st.Position != "4k3/8/8/8/8/8/8/4K2R b" {
		t.Fatalf("unexpected state %+v", st)
	}

	// empty body uses the defaults
	req := httptest.NewRequest(http.MethodPost, "/api/new_game", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty body: %d", rec.Code)
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	cases := []struct {
		name string
		path string
		body any
		want int
	}{
		{"bad side", "/api/new_game", NewGameRequest{EngineSide: "red"}, http.StatusBadRequest},
		{"bad fen", "/api/new_game", NewGameRequest{FEN: "8/8 w"}, http.StatusBadRequest},
		{"unknown field", "/api/state", `{"game":"x"}`, http.StatusBadRequest},
		{"broken json", "/api/play", `{`, http.StatusBadRequest},
		{"unknown game", "/api/state", GameRequest{GameID: "nope"}, http.StatusNotFound},
		{"unknown game play", "/api/play", PlayRequest{GameID: "nope", Move: mv("e2e4")}, http.StatusNotFound},
		{"ai bad fen", "/api/ai_move", AiMoveRequest{Position: "xyz"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := post(t, h, tc.path, tc.body)
		if rec.Code != tc.want {
			t.Errorf("%s: status %d, want %d (%s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/play", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /api/play: %d", rec.Code)
	}
}

func TestPlayAndEngineMove(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	st := newGame(t, h, NewGameRequest{})

	rec := post(t, h, "/api/legal_moves", LegalMovesRequest{GameID: st.GameID, Square: sq("e2")})
	lm := decodeBody[LegalMovesResponse](t, rec)
	if len(lm.Moves) != 2 {
		t.Fatalf("legal_moves e2 = %+v", lm)
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: st.GameID, Move: mv("e2e5")})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("illegal move: %d", rec.Code)
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: st.GameID, Move: mv("e2e4")})
	if rec.Code != http.StatusOK {
		t.Fatalf("play: %d %s", rec.Code, rec.Body.String())
	}
	st = decodeBody[StateResponse](t, rec)
	if st.ToMove != "black" || !st.EngineToMove || len(st.History) != 1 {
		t.Fatalf("after e2e4: %+v", st)
	}

	rec = post(t, h, "/api/play", PlayRequest{GameID: st.GameID, Move: mv("e7e5")})
	if rec.Code != http.StatusConflict {
		t.Fatalf("human moving for the engine: %d", rec.Code)
	}

	rec = post(t, h, "/api/engine_move", GameRequest{GameID: st.GameID})
	if rec.Code != http.StatusOK {
		t.Fatalf("engine_move: %d %s", rec.Code, rec.Body.String())
	}
	em := decodeBody[EngineMoveResponse](t, rec)
	if em.Search.Depth != 2 || em.State.ToMove != "white" || len(em.State.History) != 2 || em.State.History[1] != em.Search.BestMove {
		t.Fatalf("engine_move: %+v", em)
	}

	rec = post(t, h, "/api/engine_move", GameRequest{GameID: st.GameID})
	if rec.Code != http.StatusConflict {
		t.Fatalf("engine moving twice: %d", rec.Code)
	}
}

func TestAiMove(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})

	rec := post(t, h, "/api/ai_move", AiMoveRequest{Position: "7k/8/8/8/8/1q6/8/K6r w", Depth: 2})
	resp := decodeBody[AiMoveResponse](t, rec)
	if resp.Status != "no_moves" || resp.Score != -engine.MateScore-2 || resp.BestMove.IsValid() {
		t.Fatalf("mated side: %+v", resp)
	}

	rec = post(t, h, "/api/ai_move", AiMoveRequest{Position: chess.NewInitialPosition().Encode(), ToMove: "black", Depth: 1})
	resp = decodeBody[AiMoveResponse](t, rec)
	if resp.Status != "ok" || resp.ToMove != "black" || resp.BestMove.From.Row > 1 {
		t.Fatalf("black analysis: %+v", resp)
	}
}

func TestArchiveAfterMate(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	st := newGame(t, h, NewGameRequest{EngineSide: "none", FEN: "6k1/5ppp/8/8/8/8/8/R5K1 w"})

	rec := post(t, h, "/api/play", PlayRequest{GameID: st.GameID, Move: mv("a1a8")})
	st = decodeBody[StateResponse](t, rec)
	if st.Status != "checkmate" || st.Winner != "white" || len(st.LegalMoves) != 0 {
		t.Fatalf("after mate: %+v", st)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/archive?limit=5", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), st.GameID) {
		t.Fatalf("archive: %d %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/archive?limit=-1", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: %d", rr.Code)
	}
}

func TestCORS(t *testing.T) {
	h := newTestRouter(t, RouterOptions{LocalCors: true})
	req := httptest.NewRequest(http.MethodOptions, "/api/play", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight: %d %v", rec.Code, rec.Header())
	}
}

func TestStaticRoutes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "board.js"), []byte("const board = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestRouter(t, RouterOptions{WebDir: dir})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/web_mobile/" {
		t.Fatalf("mobile redirect: %d %q", rec.Code, rec.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/?view=desktop", nil)
	req.Header.Set("User-Agent", "Android")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Location") != "/web/" {
		t.Fatalf("view override ignored: %q", rec.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/web/board.js", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "board") {
		t.Fatalf("static file: %d %s", rec.Code, rec.Body.String())
	}
}

func TestGameStream(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	st := newGame(t, h, NewGameRequest{EngineSide: "black"})

	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws?game_id=" + st.GameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var ev wsEvent
	if err := conn.ReadJSON(&ev); err != nil || ev.Type != "state" || ev.State.ToMove != "white" {
		t.Fatalf("initial event %+v, %v", ev, err)
	}

	if err := conn.WriteJSON(wsMessage{Type: "move", Move: mv("e2e9")}); err != nil {
		t.Fatal(err)
	}
	ev = wsEvent{}
	if err := conn.ReadJSON(&ev); err != nil || ev.Type != "error" {
		t.Fatalf("illegal move event %+v, %v", ev, err)
	}

	if err := conn.WriteJSON(wsMessage{Type: "move", Move: mv("d2d4")}); err != nil {
		t.Fatal(err)
	}
	ev = wsEvent{}
	if err := conn.ReadJSON(&ev); err != nil || ev.State == nil || len(ev.State.History) != 1 {
		t.Fatalf("human move event %+v, %v", ev, err)
	}
	ev = wsEvent{}
	if err := conn.ReadJSON(&ev); err != nil || ev.Search == nil || ev.State == nil {
		t.Fatalf("engine reply event %+v, %v", ev, err)
	}
	if len(ev.State.History) != 2 || ev.State.ToMove != "white" || ev.State.History[1] != ev.Search.BestMove {
		t.Fatalf("engine reply state %+v", ev.State)
	}
}

func TestGameStreamUnknownGame(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	req := httptest.NewRequest(http.MethodGet, "/api/ws?game_id=missing", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestAiMoveDepthLimit(t *testing.T) {
	h := newTestRouter(t, RouterOptions{})
	initial := chess.NewInitialPosition().Encode()

	for _, depth := range []int{5, 64, -1} {
		rec := post(t, h, "/api/ai_move", AiMoveRequest{Position: initial, Depth: depth})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("depth %d: status %d, want 400 (%s)", depth, rec.Code, rec.Body.String())
		}
		if resp := decodeBody[ErrorResponse](t, rec); !strings.Contains(resp.Error, "depth") {
			t.Fatalf("depth %d: error %q does not name the depth", depth, resp.Error)
		}
	}

	rec := post(t, h, "/api/ai_move", AiMoveRequest{Position: "7k/8/8/8/8/8/8/K7 w", Depth: 4})
	if rec.Code != http.StatusOK {
		t.Fatalf("depth at the limit: status %d", rec.Code)
	}
}

func TestNewHandlerDefaultMaxDepth(t *testing.T) {
	h := NewHandler(nil, nil, HandlerConfig{})
	if h.maxDepth != DefaultMaxDepth {
		t.Fatalf("maxDepth = %d, want %d", h.maxDepth, DefaultMaxDepth)
	}
}
