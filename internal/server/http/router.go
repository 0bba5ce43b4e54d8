package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	WebDir       string // desktop assets; empty disables static routes
	MobileWebDir string // defaults to WebDir
	LocalCors    bool
	RequestLog   bool
}

func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	if opts.LocalCors {
		r.Use(CORS)
	}
	if opts.RequestLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/new_game", h.handleNewGame)
		r.Post("/state", h.handleState)
		r.Post("/legal_moves", h.handleLegalMoves)
		r.Post("/play", h.handlePlay)
		r.Post("/engine_move", h.handleEngineMove)
		r.Post("/ai_move", h.handleAiMove)
		r.Get("/archive", h.handleArchive)
		r.Get("/ws", h.handleGameStream)
	})

	if opts.WebDir != "" {
		RegisterStaticRoutes(r, opts.WebDir, opts.MobileWebDir)
	}
	return r
}

// CORS allows any origin; only meant for local frontend development.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
