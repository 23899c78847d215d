package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tripplanner/internal/catalog"
	"tripplanner/internal/logging"
	"tripplanner/internal/tui"
)

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The UI owns the terminal; logs go to the configured file or nowhere.
	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := newLogger(cfg, logFile)

	svc := newService(cfg, log)
	m := tui.New(svc, tui.Options{
		Destinations:     cfg.Catalog.Destinations,
		Interests:        catalog.Interests(cfg.Catalog.Categories),
		DefaultDays:      cfg.TUI.DefaultDays,
		MaxDays:          cfg.Planner.MaxDays,
		ActivitiesPerDay: cfg.Planner.ActivitiesPerDay,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
