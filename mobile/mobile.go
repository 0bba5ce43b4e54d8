package mobile

import (
	"net/http"

	"go.uber.org/zap"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
	"chessmm/internal/server/game"
	httpserver "chessmm/internal/server/http"
)

// StartServer starts the local HTTP server for an embedding app and returns at once.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// depth: engine depth, <= 0 for the default
// engineSide: "white", "black" or "none"
func StartServer(webDir string, port string, depth int, engineSide string) {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()

	side, ok := chess.ParseSide(engineSide)
	if !ok {
		log.Warnw("unknown engine side, engine plays black", "value", engineSide)
		side = chess.Black
	}

	mgr := game.NewManager(engine.NewEngine(log.Named("engine")), engine.SearchConfig{Depth: depth}, nil, nil, log.Named("game"))
	router := httpserver.NewRouter(httpserver.NewHandler(mgr, log.Named("http"), httpserver.HandlerConfig{EngineSide: side}), httpserver.RouterOptions{
		WebDir: webDir,
	})

	// off the caller's thread so the app UI is not blocked
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, router); err != nil {
			log.Errorw("server stopped", "error", err)
		}
	}()
}
