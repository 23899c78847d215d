// Package catalog generates the synthetic activity catalog and its text corpus.
package catalog

import (
	"fmt"
	"math/rand/v2"

	"tripplanner/internal/domain"
)

// DestinationsPerActivity is how many distinct destinations each activity is offered in.
const DestinationsPerActivity = 3

// Build emits DestinationsPerActivity records for every activity of every category,
// each at a destination sampled without replacement from destinations. A nil rng
// uses an unseeded source.
func Build(categories []domain.Category, destinations []string, rng *rand.Rand) domain.Catalog {
	pool := dedupe(destinations)
	if len(pool) == 0 || len(categories) == 0 {
		return domain.Catalog{}
	}
	if rng == nil {
		rng = NewRand(0)
	}
	k := min(DestinationsPerActivity, len(pool))
	out := make(domain.Catalog, 0, Size(categories)*k/DestinationsPerActivity)
	for _, cat := range categories {
		for _, name := range cat.Activities {
			for _, dest := range sample(pool, k, rng) {
				out = append(out, domain.ActivityRecord{
					Name:        name,
					Description: fmt.Sprintf("%s is a wonderful activity in %s.", name, dest),
					Category:    cat.Name,
					Destination: dest,
				})
			}
		}
	}
	return out
}

// Size is the number of records Build produces for categories when at least
// DestinationsPerActivity destinations are available.
func Size(categories []domain.Category) int {
	n := 0
	for _, cat := range categories {
		n += len(cat.Activities) * DestinationsPerActivity
	}
	return n
}

// Corpus derives one document per record, positionally aligned with the catalog.
func Corpus(c domain.Catalog) []string {
	docs := make([]string, len(c))
	for i, a := range c {
		docs[i] = fmt.Sprintf("%s %s %s %s", a.Name, a.Description, a.Category, a.Destination)
	}
	return docs
}

// Interests is the union of activity names across categories, in category order.
func Interests(categories []domain.Category) []string {
	var names []string
	for _, cat := range categories {
		names = append(names, cat.Activities...)
	}
	return dedupe(names)
}

// NewRand returns a PCG-backed generator. A zero seed draws one from the runtime.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// sample picks k items of pool without replacement using a partial Fisher-Yates shuffle.
func sample(pool []string, k int, rng *rand.Rand) []string {
	tmp := append([]string(nil), pool...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:k]
}

func dedupe(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x == "" {
			continue
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
