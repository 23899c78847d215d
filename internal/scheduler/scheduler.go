// Package scheduler turns ranked catalog matches into a day-by-day itinerary.
package scheduler

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"tripplanner/internal/catalog"
	"tripplanner/internal/domain"
)

const (
	minDuration = 1
	maxDuration = 3
	minCost     = 500
	maxCost     = 2000

	dailyLow  = 1500
	dailyHigh = 5000

	bestTime = "October - March"
)

var tips = []string{
	"Carry sunscreen",
	"Stay hydrated",
	"Try local food",
	"Use local transport for convenience",
}

// Schedule keeps the ranked records located at destination, in rank order, and cuts
// them into consecutive days of perDay activities. It stops at the first day that
// would be empty, so fewer than days plans may come back. A nil rng draws from an
// unseeded source.
func Schedule(ranked []int, cat domain.Catalog, destination string, days, perDay int, rng *rand.Rand) []domain.DayPlan {
	if days <= 0 || perDay <= 0 {
		return []domain.DayPlan{}
	}
	if rng == nil {
		rng = catalog.NewRand(0)
	}
	matches := make([]domain.ActivityRecord, 0, days*perDay)
	for _, idx := range ranked {
		if idx < 0 || idx >= len(cat) {
			continue
		}
		if cat[idx].Destination == destination {
			matches = append(matches, cat[idx])
		}
	}
	plans := make([]domain.DayPlan, 0, days)
	for d := 0; d < days; d++ {
		start := d * perDay
		if start >= len(matches) {
			break
		}
		end := min(start+perDay, len(matches))
		plan := domain.DayPlan{
			Day:        d + 1,
			Title:      fmt.Sprintf("Day %d Adventures", d+1),
			Activities: make([]domain.ActivityEntry, 0, end-start),
		}
		for _, rec := range matches[start:end] {
			plan.Activities = append(plan.Activities, entry(rec, rng))
		}
		plans = append(plans, plan)
	}
	return plans
}

func entry(rec domain.ActivityRecord, rng *rand.Rand) domain.ActivityEntry {
	return domain.ActivityEntry{
		Time:          domain.TimeSlots[rng.IntN(len(domain.TimeSlots))],
		Activity:      rec.Name,
		Description:   rec.Description,
		Duration:      minDuration + rng.IntN(maxDuration-minDuration+1),
		EstimatedCost: minCost + rng.IntN(maxCost-minCost+1),
	}
}

// Assemble wraps scheduled days with the overview, tips and a cost estimate that
// depends only on the requested trip length.
func Assemble(q domain.UserQuery, days []domain.DayPlan) domain.Itinerary {
	if days == nil {
		days = []domain.DayPlan{}
	}
	return domain.Itinerary{
		Destination: q.Destination,
		Overview: fmt.Sprintf("A %d-day trip to %s covering your interests: %s.",
			q.Days, q.Destination, strings.Join(q.Interests, ", ")),
		BestTime:           bestTime,
		Days:               days,
		Tips:               append([]string(nil), tips...),
		EstimatedTotalCost: TotalCost(q.Days),
	}
}

// TotalCost is the per-person estimate for a trip of the given length.
func TotalCost(days int) domain.CostRange {
	return domain.CostRange{Low: dailyLow * days, High: dailyHigh * days}
}
