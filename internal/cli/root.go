// Package cli implements the command-line interface for gocross.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_cross/internal/config"
	"github.com/SeamusWaldron/gocube_cross/internal/render"
	"github.com/SeamusWaldron/gocube_cross/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	noColor    bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocross",
	Short: "Bottom cross solver for the 3x3 cube",
	Long: `gocross - A CLI tool for solving the bottom cross of a 3x3 cube.

Describe a cube by a scramble or by its 54 facelet colors, get the move
sequence that builds the cross on the Bottom face, save runs to a local
database and replay them move by move.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.gocube_cross/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_cross/gocross.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Render cubes as plain letters")
}

// setup loads the config file and builds the logger. Flags override values
// from the file.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if noColor {
		cfg.Color = false
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// openDB opens the configured database.
func openDB() (*storage.DB, error) {
	if cfg.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", slog.String("path", cfg.DBPath))
	return db, nil
}

func renderer() *render.Renderer {
	return render.New(cfg.Color)
}
