package api

import (
	"log/slog"

	"github.com/vizigr0u/sugarcube/pkg/logging"
	"github.com/vizigr0u/sugarcube/pkg/server"
)

const (
	name           = "sugarcubed"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/vizigr0u/sugarcube/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := server.Run(server.DefaultConfig()); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
