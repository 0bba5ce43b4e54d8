package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"

	"chessmm/internal/adapters"
	"chessmm/internal/bootstrap"
	"chessmm/internal/chess"
	"chessmm/internal/engine"
	repo "chessmm/internal/repository"
	"chessmm/internal/server/game"
	httpserver "chessmm/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser
}

func main() {
	cfgPath := flag.String("config", ".env", "config file (missing file = defaults + environment)")
	open := flag.Bool("open", false, "open the default browser once listening")
	flag.Parse()

	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, archive, closeStores := initStores(ctx, logger, cfg)
	defer closeStores()

	engineSide, ok := chess.ParseSide(cfg.EngineSide)
	if !ok {
		logger.Fatalw("bad ENGINE_SIDE", "value", cfg.EngineSide)
	}

	mgr := game.NewManager(
		engine.NewEngine(logger.Named("engine")),
		engine.SearchConfig{Depth: cfg.EngineDepth, Workers: cfg.EngineWorkers},
		cache, archive,
		logger.Named("game"),
	)
	handler := httpserver.NewHandler(mgr, logger.Named("http"), httpserver.HandlerConfig{
		EngineSide: engineSide,
		MaxDepth:   cfg.EngineMaxDepth,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		WebDir:     cfg.WebDir,
		LocalCors:  cfg.IsLocalCors,
		RequestLog: true,
	})

	srv := &http.Server{Addr: cfg.ServerAddr, Handler: router}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infow("listening", "addr", cfg.ServerAddr, "web_dir", cfg.WebDir,
		"engine_side", engineSide.String(), "depth", cfg.EngineDepth, "workers", cfg.EngineWorkers)

	if *open {
		go func() {
			// give ListenAndServe a moment to bind
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.ServerAddr)
		}()
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server failed", "error", err)
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// initStores connects the configured backends. A backend left unconfigured or
// failing to connect is replaced by its in-memory version.
func initStores(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) (repo.SearchCache, repo.GameArchive, func()) {
	var closers []func(context.Context) error
	var cache repo.SearchCache = repo.NewMemorySearchCache(0)
	var archive repo.GameArchive = repo.NewMemoryArchive()

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg, log.Named("redis"))
		if err := redisAdapter.Init(ctx); err != nil {
			log.Warnw("redis unavailable, using in-memory search cache", "error", err)
		} else {
			cache = repo.NewRedisSearchCache(redisAdapter.GetClient(), log.Named("cache"), repo.DefaultSearchTTL)
			closers = append(closers, redisAdapter.Close)
		}
	}
	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg, log.Named("mongo"))
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Warnw("mongo unavailable, using in-memory archive", "error", err)
		} else {
			archive = repo.NewMongoArchive(mongoAdapter.Database, log.Named("archive"))
			closers = append(closers, mongoAdapter.Close)
		}
	}

	return cache, archive, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, c := range closers {
			if err := c(ctx); err != nil {
				log.Warnw("close store", "error", err)
			}
		}
	}
}
