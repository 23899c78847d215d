package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"tripplanner/internal/catalog"
	"tripplanner/internal/config"
	"tripplanner/internal/logging"
	"tripplanner/internal/planner"
)

func loadConfig() (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.AppConfig, out io.Writer) zerolog.Logger {
	return logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
}

// newService wires the planner. A non-zero seed makes the catalog and every
// synthesized schedule field reproducible.
func newService(cfg *config.AppConfig, log zerolog.Logger) *planner.Service {
	seed := cfg.Planner.Seed
	catalogRand := catalog.NewRand(seed)
	scheduleRand := catalog.NewRand(0)
	if seed != 0 {
		scheduleRand = catalog.NewRand(seed + 1)
	}
	src := cfg.Source()
	build := func() (*planner.Snapshot, error) {
		snap := planner.BuildSnapshot(src, catalogRand)
		log.Debug().
			Int("records", len(snap.Catalog())).
			Int("vocabulary", snap.Model().Dimension()).
			Msg("catalog snapshot built")
		return snap, nil
	}
	return planner.NewService(build, planner.WithRand(scheduleRand), planner.WithLogger(log))
}
