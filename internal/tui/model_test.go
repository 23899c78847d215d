package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/domain"
	"tripplanner/internal/scheduler"
)

type fakePlanner struct {
	queries []domain.UserQuery
}

func (f *fakePlanner) Recommend(_ context.Context, q domain.UserQuery) (domain.Itinerary, error) {
	f.queries = append(f.queries, q)
	if err := q.Validate(); err != nil {
		return domain.Itinerary{}, err
	}
	q = q.Normalized()
	return scheduler.Assemble(q, []domain.DayPlan{{
		Day:   1,
		Title: "Day 1 Adventures",
		Activities: []domain.ActivityEntry{{
			Time: domain.Evening, Activity: q.Interests[0],
			Description: q.Interests[0] + " is a wonderful activity in " + q.Destination + ".",
			Duration:    2, EstimatedCost: 1200,
		}},
	}}), nil
}

func testOptions() Options {
	return Options{
		Destinations: []string{"Goa", "Kerala"},
		Interests:    []string{"Beach Day", "Spa Day", "Camping"},
		DefaultDays:  2,
	}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestModel_GeneratesFromForm(t *testing.T) {
	fp := &fakePlanner{}
	m := press(t, New(fp, testOptions()),
		tea.WindowSizeMsg{Width: 100, Height: 60},
		// Goa, then skip to interests and pick Beach Day and Camping.
		right, tab, tab,
		space, down, down, space,
		// Moderate budget, Action-Packed style.
		tab, right,
		tab, left,
		tab, enter,
	)

	require.Len(t, fp.queries, 1)
	q := fp.queries[0]
	assert.Equal(t, "Goa", q.Destination)
	assert.Equal(t, []string{"Beach Day", "Camping"}, q.Interests)
	assert.Equal(t, 2, q.Days)
	assert.Equal(t, BudgetLevels[1], q.BudgetLevel)
	assert.Equal(t, TravelStyles[2], q.TravelStyle)

	assert.False(t, m.isErr)
	assert.Equal(t, "Itinerary ready: 1 day(s) in Goa.", m.status)
	view := m.View()
	assert.Contains(t, view, "Trip Overview for Goa")
	assert.Contains(t, view, "Day 1: Day 1 Adventures")
}

func TestModel_SendsConfiguredActivitiesPerDay(t *testing.T) {
	fp := &fakePlanner{}
	opts := testOptions()
	opts.ActivitiesPerDay = 5
	m := press(t, New(fp, opts),
		tea.WindowSizeMsg{Width: 100, Height: 60},
		right, tab, tab,
		space,
		tab, tab, tab, enter,
	)

	require.Len(t, fp.queries, 1)
	assert.Equal(t, 5, fp.queries[0].ActivitiesPerDay)
	assert.Equal(t, 5, m.Query().ActivitiesPerDay)
	assert.False(t, m.isErr)
}

func TestModel_ValidationMessage(t *testing.T) {
	fp := &fakePlanner{}
	m := press(t, New(fp, testOptions()),
		tea.WindowSizeMsg{Width: 100, Height: 60},
		tab, tab, tab, tab, tab, enter,
	)
	require.Len(t, fp.queries, 1)
	assert.True(t, m.isErr)
	assert.Equal(t, domain.MissingFieldsMessage, m.status)
	assert.Nil(t, m.result)
}

func TestModel_DaysInput(t *testing.T) {
	fp := &fakePlanner{}
	m := press(t, New(fp, testOptions()),
		tea.WindowSizeMsg{Width: 100, Height: 60},
		right, tab,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}},
		tab, space,
	)
	assert.Equal(t, 5, m.Query().Days)
	assert.Equal(t, []string{"Beach Day"}, m.Query().Interests)

	// Enter inside the days field submits too.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, enter)
	require.Len(t, fp.queries, 1)
	assert.Equal(t, 5, fp.queries[0].Days)
}

func TestModel_DestinationCyclesThroughUnset(t *testing.T) {
	m := New(&fakePlanner{}, testOptions())
	assert.Equal(t, "", m.Query().Destination)
	m = press(t, m, left)
	assert.Equal(t, "Kerala", m.Query().Destination)
	m = press(t, m, right)
	assert.Equal(t, "", m.Query().Destination)
}

func TestModel_QuitKeys(t *testing.T) {
	m := New(&fakePlanner{}, testOptions())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderItinerary(t *testing.T) {
	q := domain.UserQuery{Destination: "Goa", Interests: []string{"Beach Day"}, Days: 1}
	it, err := (&fakePlanner{}).Recommend(context.Background(), q)
	require.NoError(t, err)

	out := RenderItinerary(it)
	assert.Contains(t, out, "A 1-day trip to Goa covering your interests: Beach Day.")
	assert.Contains(t, out, "Best Time to Visit: October - March")
	assert.Contains(t, out, "Estimated Total Cost: ₹1500 - ₹5000 per person")
	assert.Contains(t, out, "Evening - Beach Day (2 hours) - ₹1200")
	assert.Contains(t, out, "Beach Day is a wonderful activity in Goa.")
	assert.Contains(t, out, "- Use local transport for convenience")
}

func TestRenderItinerary_Empty(t *testing.T) {
	it := scheduler.Assemble(domain.UserQuery{Destination: "Sikkim", Interests: []string{"Spa Day"}, Days: 2}, nil)
	out := RenderItinerary(it)
	assert.Contains(t, out, "No activities matched this destination.")
	assert.False(t, strings.Contains(out, "Day 1:"))
}
