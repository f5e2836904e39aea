// Command boatescape runs the game in an OpenGL window.
package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"boatescape/internal/config"
	"boatescape/internal/game"
	"boatescape/internal/logging"
	"boatescape/internal/telemetry"
)

func main() {
	start := time.Now()
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	var files []io.Writer
	if cfg.LogsDir != "" {
		f, err := logging.OpenLogFile(cfg.LogsDir, "boatescape", start)
		if err != nil {
			log.Warn().Err(err).Msg("log file unavailable")
		} else {
			defer f.Close()
			files = append(files, f)
		}
	}
	logger := logging.Setup(cfg.LogLevel, os.Stderr, files...)

	rec, err := telemetry.New()
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		rec = nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	if err := game.RunDesktop(game.Options{
		Config:    cfg,
		Logger:    logger,
		Telemetry: rec,
		Seed:      seed,
	}); err != nil {
		logger.Fatal().Err(err).Msg("desktop run failed")
	}
	if rec != nil {
		t := rec.Totals()
		logger.Info().Int64("shots", t.PlayerShots).Int64("kills", t.Kills).Int64("hits", t.PlayerHits).Msg("session totals")
	}
}
