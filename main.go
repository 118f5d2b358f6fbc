package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wetlandworld/frogquiz/internal/app"
	"github.com/wetlandworld/frogquiz/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// main starts the quiz window with stored settings. fyne package builds this
// entry point; cmd/frogquiz adds flags and inspection commands.
func main() {
	logger := logging.New(slog.LevelInfo)
	logger.Info("frog quiz starting", "version", version)

	if err := app.Run(app.Options{Version: version, Logger: logger}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
