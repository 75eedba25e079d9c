// Package main provides the HTTP server entry point for devacia-os.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm/logger"

	"github.com/devacia/devacia-os/internal/agent/messaging"
	"github.com/devacia/devacia-os/internal/agent/pdfgen"
	"github.com/devacia/devacia-os/internal/agent/research"
	"github.com/devacia/devacia-os/internal/config"
	"github.com/devacia/devacia-os/internal/server"
	"github.com/devacia/devacia-os/internal/store"
	"github.com/devacia/devacia-os/internal/store/gormstore"
	"github.com/devacia/devacia-os/internal/store/jsonfile"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Config file path (default: ~/.devacia/config.yaml)")
	listenAddr := flag.String("listen", "", "HTTP bind address (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Setup logging
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load config
	path := *configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to load config")
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if cfg.APIKey == "" {
		log.Fatal().Msg("No API key configured; set api_key in the config file or DEVACIA_API_KEY")
	}

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create data directory")
	}

	// External tool adapters, configured from the environment. Read these
	// before opening storage: log.Fatal does not run defers, so nothing that
	// can bail out may come after the stores are open.
	var researchCfg research.Config
	if err := envconfig.Process("DEVACIA_RESEARCH", &researchCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to read research config")
	}
	var brevoCfg messaging.BrevoConfig
	if err := envconfig.Process("DEVACIA_BREVO", &brevoCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to read Brevo config")
	}
	var twilioCfg messaging.TwilioConfig
	if err := envconfig.Process("DEVACIA_TWILIO", &twilioCfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to read Twilio config")
	}

	// Select the persistence backend
	clients, scripts, closeStores, err := buildStores(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("Failed to initialize storage")
	}
	defer closeStores()

	svc := server.New(Version, cfg,
		clients, scripts,
		research.NewClient(researchCfg),
		pdfgen.NewRenderer(filepath.Join(cfg.Storage.DataDir, "documents")),
		messaging.NewBrevoClient(brevoCfg),
		messaging.NewTwilioClient(twilioCfg))

	// Watch the config file so the shared secret can rotate without a restart
	watcher, err := config.NewWatcher(path, func(updated *config.Config) {
		if updated.APIKey != "" {
			svc.SetAPIKey(updated.APIKey)
			log.Info().Msg("API key reloaded from config")
		}
	})
	if err != nil {
		log.Warn().Err(err).Msg("Config watcher unavailable; key rotation requires restart")
	} else if err := watcher.Start(); err != nil {
		log.Warn().Err(err).Msg("Failed to start config watcher")
	} else {
		defer watcher.Stop()
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.ListenAddr).Str("version", Version).
			Str("backend", cfg.Storage.Backend).Msg("Starting devacia-os")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// buildStores initializes the configured persistence backend and returns the
// client and script stores plus a close function.
func buildStores(cfg *config.Config) (store.ClientStore, store.ScriptStore, func(), error) {
	clock := store.SystemClock{}

	switch cfg.Storage.Backend {
	case "", "jsonfile":
		clients := jsonfile.NewClientStore(filepath.Join(cfg.Storage.DataDir, "clients.json"), clock)
		scripts := jsonfile.NewScriptStore(filepath.Join(cfg.Storage.DataDir, "scripts.json"), clock)
		return clients, scripts, func() {}, nil

	case gormstore.BackendSQLite:
		db, err := gormstore.NewStore(gormstore.Config{
			Backend:  gormstore.BackendSQLite,
			Path:     filepath.Join(cfg.Storage.DataDir, "devacia.db"),
			MaxConns: cfg.Storage.MaxConns,
			LogLevel: logger.Silent,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return gormstore.NewClientStore(db, clock), gormstore.NewScriptStore(db, clock),
			func() { _ = db.Close() }, nil

	case gormstore.BackendPostgres:
		db, err := gormstore.NewStore(gormstore.Config{
			Backend:  gormstore.BackendPostgres,
			DSN:      cfg.Storage.PostgresDSN,
			MaxConns: cfg.Storage.MaxConns,
			LogLevel: logger.Silent,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return gormstore.NewClientStore(db, clock), gormstore.NewScriptStore(db, clock),
			func() { _ = db.Close() }, nil

	default:
		return nil, nil, nil, errors.New("unknown storage backend: " + cfg.Storage.Backend)
	}
}
