package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripplanner/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	dayStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	slotStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// RenderItinerary lays out an itinerary as styled text: overview, day-wise
// activities, then tips.
func RenderItinerary(it domain.Itinerary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Trip Overview for "+it.Destination) + "\n")
	b.WriteString(it.Overview + "\n")
	b.WriteString("Best Time to Visit: " + it.BestTime + "\n")
	b.WriteString("Estimated Total Cost: " + it.EstimatedTotalCost.String() + "\n")

	if it.Empty() {
		b.WriteString(sectionStyle.Render("No activities matched this destination.") + "\n")
	}
	for _, day := range it.Days {
		b.WriteString("\n" + dayStyle.Render(fmt.Sprintf("Day %d: %s", day.Day, day.Title)) + "\n")
		for _, act := range day.Activities {
			b.WriteString(fmt.Sprintf("  %s - %s (%s) - %s\n",
				slotStyle.Render(string(act.Time)), act.Activity, act.DurationLabel(), act.CostLabel()))
			b.WriteString("    " + subtleStyle.Render(act.Description) + "\n")
		}
	}

	b.WriteString(sectionStyle.Render("Travel Tips") + "\n")
	for _, tip := range it.Tips {
		b.WriteString("  - " + tip + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
