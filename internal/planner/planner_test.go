package planner

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/catalog"
	"tripplanner/internal/domain"
)

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

func testSnapshot(t *testing.T, seed uint64) *Snapshot {
	t.Helper()
	return BuildSnapshot(catalog.Default(), seeded(seed))
}

func goaQuery() domain.UserQuery {
	return domain.UserQuery{
		Destination:      "Goa",
		Interests:        []string{"Beach Day", "Scuba Diving"},
		Days:             2,
		ActivitiesPerDay: 3,
	}
}

func TestBuildSnapshot_Aligned(t *testing.T) {
	snap := testSnapshot(t, 1)
	assert.Len(t, snap.Catalog(), 75)
	assert.Len(t, snap.Corpus(), 75)
	assert.Len(t, snap.Model().Matrix(), 75)
	assert.Len(t, snap.Destinations(), 16)
	assert.Len(t, snap.Interests(), 25)
}

func TestRecommend_NilRands(t *testing.T) {
	var it domain.Itinerary
	require.NotPanics(t, func() {
		var err error
		it, err = Recommend(BuildSnapshot(catalog.Default(), nil), goaQuery(), nil)
		require.NoError(t, err)
	})
	assert.Equal(t, "Goa", it.Destination)
	assert.LessOrEqual(t, len(it.Days), 2)
}

func TestRecommend_GoaExample(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		snap := testSnapshot(t, seed)
		it, err := Recommend(snap, goaQuery(), seeded(seed))
		require.NoError(t, err)

		assert.Equal(t, "Goa", it.Destination)
		assert.LessOrEqual(t, len(it.Days), 2)
		assert.Equal(t, domain.CostRange{Low: 3000, High: 10000}, it.EstimatedTotalCost)
		for i, day := range it.Days {
			assert.Equal(t, i+1, day.Day)
			assert.NotEmpty(t, day.Activities)
			assert.LessOrEqual(t, len(day.Activities), 3)
			for _, act := range day.Activities {
				assert.True(t, strings.HasSuffix(act.Description, " in Goa."), act.Description)
				assert.True(t, offeredAt(snap.Catalog(), act.Activity, "Goa"), act.Activity)
			}
		}
	}
}

func offeredAt(cat domain.Catalog, name, dest string) bool {
	for _, rec := range cat {
		if rec.Name == name && rec.Destination == dest {
			return true
		}
	}
	return false
}

func TestRecommend_AllMatchesScheduledInRankOrder(t *testing.T) {
	snap := testSnapshot(t, 11)
	q := goaQuery()
	q.Days = 30
	q.ActivitiesPerDay = 1

	it, err := Recommend(snap, q, seeded(1))
	require.NoError(t, err)

	var want []string
	for _, idx := range Rank(snap, q) {
		if snap.Catalog()[idx].Destination == "Goa" {
			want = append(want, snap.Catalog()[idx].Name)
		}
	}
	var got []string
	for _, day := range it.Days {
		got = append(got, day.Activities[0].Activity)
	}
	assert.Equal(t, want, got)
	assert.Len(t, it.Days, len(want))
}

func TestRecommend_InterestRanksFirst(t *testing.T) {
	snap := testSnapshot(t, 4)
	var dest string
	for _, rec := range snap.Catalog() {
		if rec.Name == "Scuba Diving" {
			dest = rec.Destination
			break
		}
	}
	require.NotEmpty(t, dest)

	it, err := Recommend(snap, domain.UserQuery{Destination: dest, Interests: []string{"Scuba Diving"}, Days: 1}, seeded(1))
	require.NoError(t, err)
	require.NotEmpty(t, it.Days)
	assert.Equal(t, "Scuba Diving", it.Days[0].Activities[0].Activity)
}

func TestRank_Deterministic(t *testing.T) {
	snap := testSnapshot(t, 3)
	first := Rank(snap, goaQuery())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Rank(snap, goaQuery()))
	}
}

func TestRecommend_UnknownDestinationIsEmptyNotError(t *testing.T) {
	snap := testSnapshot(t, 1)
	q := goaQuery()
	q.Destination = "Atlantis"
	it, err := Recommend(snap, q, seeded(1))
	require.NoError(t, err)
	assert.True(t, it.Empty())
	assert.Equal(t, "Atlantis", it.Destination)
}

func TestRecommend_RejectsInvalidQuery(t *testing.T) {
	snap := testSnapshot(t, 1)
	_, err := Recommend(snap, domain.UserQuery{Interests: []string{"Spa Day"}, Days: 2}, seeded(1))
	assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
}

func TestQueryText(t *testing.T) {
	assert.Equal(t, "Goa Beach Day Scuba Diving", QueryText(goaQuery()))
}

func TestService_ValidationSkipsSnapshotBuild(t *testing.T) {
	var builds atomic.Int32
	svc := NewService(func() (*Snapshot, error) {
		builds.Add(1)
		return BuildSnapshot(catalog.Default(), seeded(1)), nil
	}, WithRand(seeded(2)))

	_, err := svc.Recommend(context.Background(), domain.UserQuery{Destination: "Goa", Days: 2})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.MissingFieldsMessage, verr.Message)
	assert.Zero(t, builds.Load())

	_, err = svc.Recommend(context.Background(), goaQuery())
	require.NoError(t, err)
	_, err = svc.Recommend(context.Background(), goaQuery())
	require.NoError(t, err)
	assert.Equal(t, int32(1), builds.Load())
}

func TestService_SnapshotError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(func() (*Snapshot, error) { return nil, boom })
	_, err := svc.Recommend(context.Background(), goaQuery())
	assert.ErrorIs(t, err, boom)
}

func TestService_SeededRunsMatch(t *testing.T) {
	run := func() domain.Itinerary {
		svc := FromSnapshot(testSnapshot(t, 8), WithRand(seeded(9)))
		it, err := svc.Recommend(context.Background(), goaQuery())
		require.NoError(t, err)
		return it
	}
	assert.Equal(t, run(), run())
}

func TestService_ConcurrentQueries(t *testing.T) {
	svc := FromSnapshot(testSnapshot(t, 5), WithRand(seeded(6)))
	snap, err := svc.Snapshot()
	require.NoError(t, err)
	want := Rank(snap, goaQuery())

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it, err := svc.Recommend(context.Background(), goaQuery())
			if err != nil {
				errs <- err
				return
			}
			if it.Destination != "Goa" {
				errs <- errors.New("wrong destination")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, want, Rank(snap, goaQuery()))
}
