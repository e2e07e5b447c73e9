package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/playperu/worldtour/internal/config"
	"github.com/playperu/worldtour/internal/database"
	"github.com/playperu/worldtour/internal/gemini"
	"github.com/playperu/worldtour/internal/handler/health"
	"github.com/playperu/worldtour/internal/journey"
	"github.com/playperu/worldtour/internal/kv"
	"github.com/playperu/worldtour/internal/migrations"
	"github.com/playperu/worldtour/internal/persist"
	"github.com/playperu/worldtour/internal/server"
	"github.com/playperu/worldtour/internal/travel"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Storage ---
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	checks := map[string]health.Checker{"kv": store}

	// --- Generation ---
	gen, err := gemini.New(ctx, gemini.Config{
		APIKey:     cfg.GeminiAPIKey,
		ImageModel: cfg.GeminiImageModel,
		TextModel:  cfg.GeminiTextModel,
		Timeout:    cfg.GenerationTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}
	checks["generator"] = health.CheckFunc(func(context.Context) error {
		if !gen.Configured() {
			return errors.New("api key not configured")
		}
		return nil
	})

	persona, err := loadPersona(cfg.PersonaImagePath)
	if err != nil {
		return err
	}
	if persona != nil {
		logger.Info("loaded persona image", "path", cfg.PersonaImagePath, "mime_type", persona.MIMEType)
	}

	// --- Journeys ---
	broker := server.NewBroker()
	engine := journey.NewEngine(gen, persist.New(kv.WithQuota(store, cfg.KVQuotaBytes)), broker, logger, journey.Options{
		IntroDelay: cfg.IntroDelay,
		Persona:    persona,
		Seed:       cfg.RandomSeed,
		PublicURL:  cfg.PublicURL,
		IdleTTL:    cfg.SessionIdleTTL,
	})

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Engine:         engine,
		Broker:         broker,
		Generator:      gen,
		Admin:          server.AdminCredentials{User: cfg.AdminUser, PasswordHash: cfg.AdminPasswordHash},
		Pools:          travel.DefaultPools,
		Checks:         checks,
		SPADir:         cfg.SPADir,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		return engine.RunSweeper(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

type checkedStore interface {
	kv.Store
	health.Checker
}

// openStore connects the configured kv backend. The returned func
// releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (checkedStore, func(), error) {
	switch cfg.KVBackend {
	case config.BackendRedis:
		rdb, err := kv.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("connected to redis")
		return kv.NewRedis(rdb, "worldtour:"), func() { rdb.Close() }, nil

	case config.BackendPostgres:
		pg, err := kv.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		logger.Info("connected to postgres")
		return pg, func() { pg.Close() }, nil

	case config.BackendMemory:
		logger.Warn("using in-memory store, journeys are lost on restart")
		return kv.NewMemory(), func() {}, nil

	default:
		db, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		applied, err := migrations.Run(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		logger.Info("connected to sqlite", "path", cfg.DBPath, "migrations_applied", applied)
		return kv.NewSQLite(db), func() { db.Close() }, nil
	}
}

func loadPersona(path string) (*travel.Photo, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading persona image: %w", err)
	}
	mime := http.DetectContentType(data)
	if mime != "image/png" && mime != "image/jpeg" && mime != "image/webp" {
		return nil, fmt.Errorf("persona image %s: unsupported type %s", path, mime)
	}
	return &travel.Photo{MIMEType: mime, Data: data}, nil
}
