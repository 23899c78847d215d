package planner

import (
	"math/rand/v2"

	"tripplanner/internal/catalog"
	"tripplanner/internal/domain"
	"tripplanner/internal/embedding/tfidf"
)

// Snapshot is the read-only state every query runs against: the catalog, its corpus
// and the TF-IDF model fitted on that corpus. The three are built together and a
// Snapshot is never mutated, so one may be shared by concurrent queries.
type Snapshot struct {
	source  catalog.Source
	catalog domain.Catalog
	corpus  []string
	model   *tfidf.Model
}

// BuildSnapshot generates the catalog from src using rng and fits the vectorizer on it.
func BuildSnapshot(src catalog.Source, rng *rand.Rand) *Snapshot {
	cat := catalog.Build(src.Categories, src.Destinations, rng)
	corpus := catalog.Corpus(cat)
	return &Snapshot{
		source:  src,
		catalog: cat,
		corpus:  corpus,
		model:   tfidf.Fit(corpus),
	}
}

// Catalog returns the generated records. The slice must not be modified.
func (s *Snapshot) Catalog() domain.Catalog { return s.catalog }

// Corpus returns the documents the model was fitted on. The slice must not be modified.
func (s *Snapshot) Corpus() []string { return s.corpus }

// Model returns the fitted vectorizer.
func (s *Snapshot) Model() *tfidf.Model { return s.model }

// Destinations lists the master destination set.
func (s *Snapshot) Destinations() []string {
	return append([]string(nil), s.source.Destinations...)
}

// Interests lists every activity name a query may pick as an interest.
func (s *Snapshot) Interests() []string { return catalog.Interests(s.source.Categories) }
