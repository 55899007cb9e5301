// Package cli implements the easeit CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rcliao/easeit/internal/command"
	"github.com/rcliao/easeit/internal/preset"
	"github.com/rcliao/easeit/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	docFlag     string
	formatFlag  string
	presetsPath string
	verbose     bool

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "easeit",
	Short: "Keyframe easing for animation curves",
	Long: "Apply easing presets to the selected keyframes of animation curves. " +
		"Curves live in a SQLite document store with per-action undo.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $EASEIT_DB or ~/.easeit/curves.db)")
	RootCmd.PersistentFlags().StringVarP(&docFlag, "doc", "n", "", "Animation document (default: $EASEIT_DOC or \"default\")")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&presetsPath, "presets", "", "Custom preset YAML file (default: $EASEIT_PRESETS)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("EASEIT_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".easeit", "curves.db")
}

func getDoc() string {
	if docFlag != "" {
		return docFlag
	}
	if env := os.Getenv("EASEIT_DOC"); env != "" {
		return env
	}
	return "default"
}

func openStore() (*store.SQLiteStore, error) {
	path := getDBPath()
	logger.Debug("open store", "path", path)
	return store.NewSQLiteStore(path)
}

// loadCatalog returns the built-in presets plus any custom preset file.
func loadCatalog() (*preset.Catalog, error) {
	cat := preset.Builtin()
	path := presetsPath
	if path == "" {
		path = os.Getenv("EASEIT_PRESETS")
	}
	if path == "" {
		return cat, nil
	}
	n, err := cat.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded custom presets", "path", path, "count", n)
	return cat, nil
}

func loadTable() (*command.Table, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return command.NewTable(cat), nil
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
