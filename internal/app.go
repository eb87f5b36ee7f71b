// Package internal provides the App struct that wires the storage, engine,
// and observability services together and hands them to the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rubenagostinho/taskr/internal/cli"
	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/rubenagostinho/taskr/internal/storage"
)

// App holds all service dependencies for the taskr tool.
type App struct {
	BasePath string

	Config   *core.Config
	Store    storage.TaskStore
	Engine   core.Engine
	EventLog observability.EventLog
}

// NewApp creates and wires all components. basePath is the directory holding
// the data file, event log, and optional .taskrconfig.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	cfg, err := core.LoadConfig(basePath)
	if err != nil {
		// A malformed config file must not brick the tool.
		fmt.Fprintf(os.Stderr, "warning: %v; using default configuration\n", err)
		cfg = core.DefaultConfig()
	}
	app.Config = cfg

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	app.Store = storage.NewFileTaskStore(filepath.Join(basePath, cfg.DataFile))
	app.Engine = core.NewEngine(app.Store, time.Now)

	eventLog, err := observability.NewJSONLEventLog(filepath.Join(basePath, cfg.EventsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing event log: %w", err)
	}
	app.EventLog = eventLog

	// Expose services to the CLI command tree.
	cli.BasePath = basePath
	cli.Engine = app.Engine
	cli.Store = app.Store
	cli.EventLog = app.EventLog

	return app, nil
}

// ResolveBasePath returns the directory taskr keeps its state in:
// $TASKR_HOME when set, otherwise ~/.taskr.
func ResolveBasePath() string {
	if home := os.Getenv("TASKR_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskr"
	}
	return filepath.Join(home, ".taskr")
}
