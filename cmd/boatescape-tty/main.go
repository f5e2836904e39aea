// Command boatescape-tty runs the game in a terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"boatescape/internal/config"
	"boatescape/internal/logging"
	"boatescape/internal/telemetry"
	"boatescape/internal/tty"
)

func main() {
	start := time.Now()
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to a file.
	dir := cfg.LogsDir
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := logging.OpenLogFile(dir, "boatescape-tty", start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := logging.Setup(cfg.LogLevel, nil, f)

	rec, err := telemetry.New()
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		rec = nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	err = tty.Run(tty.Options{
		Config:    cfg,
		Logger:    logger,
		Telemetry: rec,
		Seed:      seed,
	})
	if err != nil {
		logger.Error().Err(err).Msg("terminal run failed")
		fmt.Fprintf(os.Stderr, "boatescape-tty: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("log written to %s\n", f.Name())
}
