package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	ownErrors "chessmm/internal/errors"
	repo "chessmm/internal/repository"
)

type session struct {
	mu    sync.Mutex
	state GameState
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*session

	engine  *engine.Engine
	search  engine.SearchConfig
	cache   repo.SearchCache
	archive repo.GameArchive
	log     *zap.SugaredLogger
}

// NewManager wires the engine and storage. Nil cache or archive fall back to the
// in-memory implementations.
func NewManager(eng *engine.Engine, cfg engine.SearchConfig, cache repo.SearchCache, archive repo.GameArchive, log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if eng == nil {
		eng = engine.NewEngine(log)
	}
	if cache == nil {
		cache = repo.NewMemorySearchCache(0)
	}
	if archive == nil {
		archive = repo.NewMemoryArchive()
	}
	return &Manager{
		games:   make(map[string]*session),
		engine:  eng,
		search:  cfg,
		cache:   cache,
		archive: archive,
		log:     log,
	}
}

// NewGame starts from the standard initial position.
func (m *Manager) NewGame(engineSide chess.Side) GameState {
	return m.NewGameFrom(chess.NewInitialPosition(), engineSide)
}

// NewGameFrom starts a game from an arbitrary position.
func (m *Manager) NewGameFrom(pos *chess.Position, engineSide chess.Side) GameState {
	now := time.Now()
	start := *pos
	s := &session{state: GameState{
		ID:         uuid.NewString(),
		Pos:        &start,
		StartFEN:   start.Encode(),
		EngineSide: engineSide,
		Status:     start.Status(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}}

	m.mu.Lock()
	m.games[s.state.ID] = s
	m.mu.Unlock()

	m.log.Infow("new game", "game_id", s.state.ID, "engine_side", engineSide.String())
	return s.state.clone()
}

func (m *Manager) session(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ownErrors.ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Get(id string) (GameState, error) {
	s, err := m.session(id)
	if err != nil {
		return GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone(), nil
}

// LegalMovesAt lists the legal moves of the piece on sq. Squares that are empty or
// hold a piece of the side not to move give an empty list.
func (m *Manager) LegalMovesAt(id string, sq chess.Square) ([]chess.Move, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.state.Pos
	pc := pos.Board.At(sq)
	if pc == chess.Empty || pc.Side() != pos.SideToMove {
		return nil, nil
	}
	return pos.LegalMoves(pc, sq), nil
}

// Play applies a human move. Only moves from the current legal list are accepted.
func (m *Manager) Play(ctx context.Context, id string, mv chess.Move) (GameState, error) {
	s, err := m.session(id)
	if err != nil {
		return GameState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status.Finished() {
		return GameState{}, ownErrors.ErrGameOver
	}
	if s.state.EngineToMove() {
		return GameState{}, ownErrors.ErrNotPlayerTurn
	}

	next, ok := s.state.Pos.ApplyWhitelisted(mv, s.state.Pos.GenerateLegalMoves())
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ownErrors.ErrIllegalMove, mv)
	}
	m.advance(ctx, s, mv, next)
	return s.state.clone(), nil
}

// EngineMove lets the engine play for its side and returns the new state together
// with the search that produced the move.
func (m *Manager) EngineMove(ctx context.Context, id string) (GameState, engine.SearchResult, error) {
	s, err := m.session(id)
	if err != nil {
		return GameState{}, engine.SearchResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status.Finished() {
		return GameState{}, engine.SearchResult{}, ownErrors.ErrGameOver
	}
	if !s.state.EngineToMove() {
		return GameState{}, engine.SearchResult{}, ownErrors.ErrNotEngineTurn
	}

	pos := s.state.Pos
	res := m.Analyze(ctx, pos, pos.SideToMove, m.search.Depth)
	if !res.BestMove.IsValid() {
		// unreachable while Status is up to date
		return GameState{}, res, ownErrors.ErrGameOver
	}
	m.advance(ctx, s, res.BestMove, pos.ApplyMove(res.BestMove))
	return s.state.clone(), res, nil
}

// Analyze searches pos for side without touching any game, consulting the search
// cache first. depth <= 0 uses the manager's configured depth.
func (m *Manager) Analyze(ctx context.Context, pos *chess.Position, side chess.Side, depth int) engine.SearchResult {
	cfg := m.search
	if depth > 0 {
		cfg.Depth = depth
	}
	if cfg.Depth <= 0 {
		cfg.Depth = engine.DefaultDepth
	}

	view := pos.WithSideToMove(side)
	key := repo.SearchKey{Hash: view.Hash, Side: side, Depth: cfg.Depth}
	cached, err := m.cache.Get(ctx, key)
	if err == nil {
		m.log.Debugw("search cache hit", "key", key.String())
		return cached
	}
	if !errors.Is(err, ownErrors.ErrCacheMiss) {
		m.log.Warnw("search cache unavailable", "error", err)
	}

	res := m.engine.Search(pos, side, cfg)
	if err := m.cache.Put(ctx, key, res); err != nil {
		m.log.Warnw("search cache store failed", "key", key.String(), "error", err)
	}
	return res
}

// Archived lists recently finished games from the archive.
func (m *Manager) Archived(ctx context.Context, limit int) ([]repo.ArchivedGame, error) {
	return m.archive.Recent(ctx, limit)
}

// advance must be called with s.mu held.
func (m *Manager) advance(ctx context.Context, s *session, mv chess.Move, next *chess.Position) {
	st := &s.state
	st.Pos = next
	st.History = append(st.History, mv)
	st.Status = next.Status()
	st.UpdatedAt = time.Now()

	m.log.Debugw("move played", "game_id", st.ID, "move", mv.String(), "status", string(st.Status))
	if st.Status.Finished() {
		m.archiveGame(ctx, *st)
	}
}

func (m *Manager) archiveGame(ctx context.Context, st GameState) {
	rec := repo.ArchivedGame{
		ID:         st.ID,
		EngineSide: st.EngineSide.String(),
		StartFEN:   st.StartFEN,
		FinalFEN:   st.Pos.Encode(),
		Moves:      historyStrings(st.History),
		Status:     string(st.Status),
		CreatedAt:  st.CreatedAt,
		FinishedAt: st.UpdatedAt,
	}
	if w := st.Winner(); w != chess.NoSide {
		rec.Winner = w.String()
	}
	if err := m.archive.Save(ctx, rec); err != nil {
		m.log.Errorw("archive game failed", "game_id", st.ID, "error", err)
	}
}
