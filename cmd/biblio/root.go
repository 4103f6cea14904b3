package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/biblio/internal/catalog"
	"github.com/vmunix/biblio/internal/config"
	"github.com/vmunix/biblio/internal/migrations"
	"github.com/vmunix/biblio/internal/service"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "biblio",
	Short: "Bibliographic catalog manager",
	Long: `biblio - bibliographic catalog manager

Tracks books and their bibliographic cards (ISBN, Dewey classification,
shelf, language) in a local SQLite catalog. Every book carries at most
one card; deletion is logical, so nothing is ever lost.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("biblio {{.Version}}\n")
}

// app bundles the services a command needs plus the database handle's
// cleanup. Tests swap newApp for a mock-backed constructor.
type app struct {
	books service.Books
	cards service.Cards
	close func() error
}

var newApp = openApp

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	setupLogging(cfg.Log.Level)

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store := catalog.NewStore(db)
	log := slog.Default()
	return &app{
		books: service.NewBookService(store, log),
		cards: service.NewCardService(store, log),
		close: db.Close,
	}, nil
}

// loadConfig honors --config when given, otherwise discovers a config
// file and falls back to defaults so the CLI works out of the box.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	path, err := config.Discover()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
