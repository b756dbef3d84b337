package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/logging"
	"github.com/abhisek/orienta/internal/store"
)

// timeNow is replaced in tests.
var timeNow = time.Now

var rootCmd = &cobra.Command{
	Use:   "orienta",
	Short: "Vocational orientation test for the terminal",
	Long: `Orienta — a short vocational test, a few minigames and free-text
suggestions, blended into a recommended area and profession.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides ORIENTA_DB env var)")
	pf.String("catalog", "", "Catalog file, YAML or JSON (overrides ORIENTA_CATALOG env var)")
	pf.String("log-level", "", "debug, info, warn or error (overrides ORIENTA_LOG_LEVEL env var)")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagOrEnv returns the flag value, then the env var, then "".
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ORIENTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadCatalog returns the catalog from --catalog / ORIENTA_CATALOG, or the
// built-in one.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path := flagOrEnv(cmd, "catalog", "ORIENTA_CATALOG")
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// newLogger builds the logger from the log flags. With quiet set and no
// --log-file, logs are discarded so they cannot draw over the terminal UI.
// The returned closer releases the log file, if any.
func newLogger(cmd *cobra.Command, quiet bool) (*slog.Logger, func() error, error) {
	cfg := logging.DefaultConfig()
	if lvl := flagOrEnv(cmd, "log-level", "ORIENTA_LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	}
	cfg.Format, _ = cmd.Flags().GetString("log-format")

	noop := func() error { return nil }
	file, _ := cmd.Flags().GetString("log-file")
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cfg.Output = f
		l, err := logging.New(cfg)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return l, f.Close, nil
	case quiet:
		cfg.Output = io.Discard
	}

	l, err := logging.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, noop, nil
}
