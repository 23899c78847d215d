package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripplanner/internal/domain"
	"tripplanner/internal/schemas"
	"tripplanner/internal/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an itinerary once and print it",
	Long:  "Ranks the activity catalog against a destination and interests and prints a day-by-day itinerary as text or JSON.",
	RunE:  runPlan,
}

var (
	planDestination string
	planInterests   []string
	planDays        int
	planPerDay      int
	planBudget      string
	planStyle       string
	planJSON        bool
	planSeed        uint64
)

func init() {
	planCmd.Flags().StringVarP(&planDestination, "destination", "d", "", "Destination to plan for (required)")
	planCmd.Flags().StringArrayVarP(&planInterests, "interest", "i", nil, "Interest to match; repeat for several (required)")
	planCmd.Flags().IntVarP(&planDays, "days", "n", 3, "Trip duration in days (1-30)")
	planCmd.Flags().IntVar(&planPerDay, "per-day", 0, "Activities per day (default from config)")
	planCmd.Flags().StringVar(&planBudget, "budget", tui.BudgetLevels[0], "Budget level (informational)")
	planCmd.Flags().StringVar(&planStyle, "style", tui.TravelStyles[1], "Travel style (informational)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the itinerary as JSON")
	planCmd.Flags().Uint64Var(&planSeed, "seed", 0, "Seed for reproducible output (overrides config)")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if planSeed != 0 {
		cfg.Planner.Seed = planSeed
	}
	log := newLogger(cfg, os.Stderr)
	perDay := planPerDay
	if perDay == 0 {
		perDay = cfg.Planner.ActivitiesPerDay
	}

	svc := newService(cfg, log)
	it, err := svc.Recommend(log.WithContext(context.Background()), domain.UserQuery{
		Destination:      planDestination,
		Interests:        planInterests,
		Days:             planDays,
		ActivitiesPerDay: perDay,
		BudgetLevel:      planBudget,
		TravelStyle:      planStyle,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !planJSON {
		_, err = fmt.Fprintln(out, tui.RenderItinerary(it))
		return err
	}
	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary to JSON: %w", err)
	}
	// Output validation is a self-check; a mismatch is reported but not fatal.
	if err := schemas.ValidateItinerary(data); err != nil {
		log.Warn().Err(err).Msg("itinerary does not match schema")
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
