package cli

import (
	"github.com/rubenagostinho/taskr/internal/core"
	"github.com/rubenagostinho/taskr/internal/observability"
	"github.com/rubenagostinho/taskr/internal/storage"
)

// Service instances, set during app initialization in internal/app.go.
var (
	BasePath string
	Engine   core.Engine
	Store    storage.TaskStore
	EventLog observability.EventLog
)
