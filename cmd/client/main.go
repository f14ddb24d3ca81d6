package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/arkfx/BiblioShare/internal/client/api"
	"github.com/arkfx/BiblioShare/internal/client/auth"
	"github.com/arkfx/BiblioShare/internal/client/chat"
	"github.com/arkfx/BiblioShare/internal/client/cli"
	"github.com/arkfx/BiblioShare/internal/client/config"
	"github.com/arkfx/BiblioShare/internal/client/iocli"
	"github.com/arkfx/BiblioShare/internal/client/middleware"
	"github.com/arkfx/BiblioShare/internal/client/storage/boltdb"
	"github.com/arkfx/BiblioShare/internal/client/transaction"
	"github.com/arkfx/BiblioShare/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (.toml, .yaml, .json)")
	serverURL := flag.String("server", "", "Server API URL")
	dbPath := flag.String("db", "", "Path to local database")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Usage = func() { cli.PrintUsage(os.Stderr) }

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 1
	}

	// файл, затем окружение, затем флаги
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	store := auth.NewSessionStore(boltStorage, boltStorage, logger)
	store.Load(ctx)
	unsubscribe := store.Subscribe(func(p *models.Profile) {
		if p == nil {
			logger.Debug("local session cleared")
			return
		}
		logger.Debug("identity updated", "user_id", p.ID)
	})
	defer unsubscribe()

	apiClient := newAPIClient(cfg, store, logger, func(error) {
		fmt.Fprintln(os.Stderr, cli.SessionExpiredMessage)
	})

	app := cli.New(
		iocli.NewStdio(),
		auth.NewService(apiClient, store, logger),
		transaction.NewService(apiClient, logger),
		chat.NewEngine(apiClient, chat.WithInterval(cfg.PollInterval), chat.WithLogger(logger)),
		logger,
	)

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			cli.PrintUsage(os.Stderr)
			return 1
		}
		logger.Debug("command failed", "command", args[0], "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", api.UserMessage(err))
		return 1
	}
	return 0
}

// newAPIClient собирает клиент API: логирование запросов, затем авторизация.
// Refresh идет через отдельный клиент без AuthTransport, иначе 401 на refresh снова запустит refresh,
// но с тем же логированием
func newAPIClient(cfg *config.Config, store *auth.SessionStore, logger *slog.Logger, onExpired func(error)) *api.Client {
	logging := middleware.NewLoggingTransport(http.DefaultTransport, logger, "/mensagens/")

	anonClient := api.NewClient(cfg.ServerURL,
		api.WithTransport(logging),
		api.WithTimeout(cfg.RequestTimeout),
	)
	refresher := auth.NewRefresher(anonClient, store, logger)

	transport := middleware.NewAuthTransport(
		logging,
		store,
		refresher,
		middleware.WithAuthLogger(logger),
		middleware.WithSessionExpired(onExpired),
	)
	return api.NewClient(cfg.ServerURL,
		api.WithTransport(transport),
		api.WithTimeout(cfg.RequestTimeout),
	)
}

func printVersion() {
	fmt.Printf("BiblioShare Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
