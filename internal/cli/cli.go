// Package cli holds the process plumbing shared by the experiment programs.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

const (
	// ExitUsage is returned for invalid arguments and unsupported block sizes.
	ExitUsage = -1
	ExitFatal = 1
)

// Setup installs a text slog handler on stderr as the default logger.
func Setup(name string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).With("prog", name)
	slog.SetDefault(logger)
	return logger
}

// Usage reports an argument problem and exits with ExitUsage.
func Usage(usage string, err error) {
	if err != nil {
		slog.Error("invalid arguments", "error", err)
	}
	fmt.Fprintf(os.Stderr, "usage: %s\n", usage)
	os.Exit(ExitUsage)
}

// Fatal reports err with its stack and exits.
func Fatal(msg string, err error) {
	slog.Error(msg, "error", fmt.Sprintf("%+v", err))
	os.Exit(ExitFatal)
}

// Workers is the tile parallelism used by the image programs.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}
