package planner

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tripplanner/internal/domain"
)

// Service serves queries against a snapshot that is built once, on the first query
// that passes validation.
type Service struct {
	snapshot func() (*Snapshot, error)
	rng      *rand.Rand
	log      zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the source used for the synthesized schedule fields. The Service
// serializes access to it.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = rand.New(&lockedSource{src: r}) }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService returns a Service whose snapshot comes from build, called at most once.
func NewService(build func() (*Snapshot, error), opts ...Option) *Service {
	s := &Service{
		snapshot: sync.OnceValues(build),
		rng:      rand.New(&lockedSource{src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromSnapshot returns a Service over an already built snapshot.
func FromSnapshot(snap *Snapshot, opts ...Option) *Service {
	return NewService(func() (*Snapshot, error) { return snap, nil }, opts...)
}

// Snapshot returns the shared snapshot, building it if no query has yet.
func (s *Service) Snapshot() (*Snapshot, error) { return s.snapshot() }

// Recommend validates q, then ranks and schedules it against the shared snapshot.
func (s *Service) Recommend(ctx context.Context, q domain.UserQuery) (domain.Itinerary, error) {
	l := s.logger(ctx).With().
		Str("query_id", uuid.NewString()).
		Str("destination", q.Destination).
		Int("days", q.Days).
		Logger()

	if err := q.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			l.Info().Strs("fields", verr.Fields).Msg("query rejected")
		}
		return domain.Itinerary{}, err
	}
	snap, err := s.snapshot()
	if err != nil {
		l.Error().Err(err).Msg("snapshot unavailable")
		return domain.Itinerary{}, err
	}
	q = q.Normalized()
	it := recommend(snap, q, s.rng)
	l.Info().
		Strs("interests", q.Interests).
		Int("activities_per_day", q.ActivitiesPerDay).
		Str("budget_level", q.BudgetLevel).
		Str("travel_style", q.TravelStyle).
		Int("scheduled_days", len(it.Days)).
		Msg("itinerary generated")
	return it, nil
}

func (s *Service) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.log
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (r *lockedSource) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Uint64()
}
