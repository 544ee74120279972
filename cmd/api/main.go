package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"soulbuddy/internal/adapters/cache/redis"
	"soulbuddy/internal/adapters/generation/gemini"
	"soulbuddy/internal/adapters/generation/static"
	"soulbuddy/internal/adapters/signinfo/csvdata"
	mem "soulbuddy/internal/adapters/storage/memory"
	pg "soulbuddy/internal/adapters/storage/postgres"
	"soulbuddy/internal/config"
	"soulbuddy/internal/domain/readings"
	"soulbuddy/internal/platform/logger"
	"soulbuddy/internal/platform/markup"
	"soulbuddy/internal/ports/generation"
	"soulbuddy/internal/router"
)

// @title SoulBuddy API
// @version 1.0
// @description Lecturas astrológicas y de compatibilidad generadas por modelo.
// @BasePath /
func main() {
	cfg, err := config.LoadFromEnv("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}()

	signs, err := csvdata.LoadFile(cfg.Data.SignsCSV)
	if err != nil {
		return err
	}

	// Si hay DSN, usa Postgres. Si no, in-memory.
	var repo readings.Repository
	if cfg.Storage.DSN != "" {
		db, err := pg.Open(ctx, cfg.Storage.DSN, pg.PoolOptions{})
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		closers = append(closers, db.Close)
		if cfg.Storage.Migrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return fmt.Errorf("postgres: migrate: %w", err)
			}
		}
		repo = pg.NewReadingsRepo(db)
		log.Info("storage: postgres", nil)
	} else {
		repo = mem.NewReadingsRepo()
		log.Info("storage: memory", nil)
	}

	var cache readings.Cache
	if cfg.Cache.RedisURL != "" {
		rc, err := redis.Open(ctx, redis.Config{
			URL:    cfg.Cache.RedisURL,
			Prefix: cfg.Cache.Prefix,
			TTL:    cfg.Cache.TTL(),
		})
		if err != nil {
			return err
		}
		closers = append(closers, rc.Close)
		cache = rc
	} else {
		cache = mem.NewCache(cfg.Cache.TTL())
	}

	// Sin API key => generador estático (modo dev)
	var gen generation.Generator
	if cfg.Gemini.Enabled() {
		gc, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:          cfg.Gemini.APIKey,
			Model:           cfg.Gemini.Model,
			Temperature:     cfg.Gemini.Temperature,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
			Timeout:         cfg.Gemini.Timeout(),
		})
		if err != nil {
			return err
		}
		gen = gc
	} else {
		log.Warn("GEMINI_API_KEY not set, using static generator", nil)
		gen = static.New()
	}

	policy, err := markup.ParsePolicy(cfg.Render.HTMLPolicy)
	if err != nil {
		return err
	}

	svc := readings.NewService(readings.Deps{
		Repo:      repo,
		Generator: gen,
		Signs:     signs,
		Renderer:  markup.NewRenderer(policy),
		Cache:     cache,
		Logger:    log,
	})

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			Readings:       svc,
			Signs:          signs,
			Logger:         log,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "model": gen.Model()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
