// Package planner runs the recommendation pipeline: vectorize the query, rank the
// catalog, then schedule the best matches at the requested destination.
package planner

import (
	"math/rand/v2"
	"strings"

	"tripplanner/internal/domain"
	"tripplanner/internal/scheduler"
	"tripplanner/internal/similarity"
)

// Recommend validates q and builds an itinerary from snap. Validation failures
// return a *domain.ValidationError and never touch snap. An itinerary with no days
// is a valid result, not an error.
func Recommend(snap *Snapshot, q domain.UserQuery, rng *rand.Rand) (domain.Itinerary, error) {
	if err := q.Validate(); err != nil {
		return domain.Itinerary{}, err
	}
	return recommend(snap, q.Normalized(), rng), nil
}

// Rank orders catalog indexes by similarity to the query text built from q.
func Rank(snap *Snapshot, q domain.UserQuery) []int {
	vec := snap.model.Transform(QueryText(q))
	return similarity.Rank(vec, snap.model.Matrix())
}

// QueryText is the free text a query is vectorized from.
func QueryText(q domain.UserQuery) string {
	return q.Destination + " " + strings.Join(q.Interests, " ")
}

func recommend(snap *Snapshot, q domain.UserQuery, rng *rand.Rand) domain.Itinerary {
	ranked := Rank(snap, q)
	days := scheduler.Schedule(ranked, snap.catalog, q.Destination, q.Days, q.ActivitiesPerDay, rng)
	return scheduler.Assemble(q, days)
}
