package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	clientapi "github.com/iudanet/moodkeeper/internal/client/api"
	"github.com/iudanet/moodkeeper/internal/client/auth"
	"github.com/iudanet/moodkeeper/internal/client/cli"
	"github.com/iudanet/moodkeeper/internal/client/data"
	"github.com/iudanet/moodkeeper/internal/client/iocli"
	"github.com/iudanet/moodkeeper/internal/client/mode"
	"github.com/iudanet/moodkeeper/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/moodkeeper/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "moodkeeper-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.New(iocli.NewStdio(), nil, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	// Логи клиента идут в stderr, вывод команд - в stdout
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Ctrl+C завершает долгоживущие команды (watch) штатно
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *serverURL, *dbPath, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, serverURL, dbPath, command string, args []string) error {
	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := clientapi.NewClient(serverURL)

	// Guard поставляет caller identity всем потребителям: один bootstrap
	// на процесс, прозрачный refresh истекшего access token
	guard := auth.NewGuard(store, apiClient, logger)

	authService := auth.NewService(apiClient, store, logger)

	engine := clientsync.NewEngine(
		apiClient,
		clientsync.NewAPISnapshotSource(apiClient),
		guard,
		store,
		logger,
	)
	defer func() {
		if err := engine.Close(); err != nil {
			logger.Error("failed to close sync engine", "error", err)
		}
	}()

	dataService := data.NewService(engine, store, apiClient, guard, logger)
	resolver := mode.NewResolver(apiClient, guard, store, logger)

	c := cli.New(iocli.NewStdio(), authService, dataService, resolver, store)

	return c.Run(ctx, command, args)
}

func printVersion() {
	fmt.Printf("MoodKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
