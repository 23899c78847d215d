package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tripplanner/internal/domain"
)

// PlannerPort is the TUI-facing subset of the planner service.
type PlannerPort interface {
	Recommend(ctx context.Context, q domain.UserQuery) (domain.Itinerary, error)
}

// Options are the choices the form offers. ActivitiesPerDay is sent on every
// query; zero leaves the planner default.
type Options struct {
	Destinations     []string
	Interests        []string
	DefaultDays      int
	MaxDays          int
	ActivitiesPerDay int
}

// BudgetLevels and TravelStyles are offered by the form and passed through on the query.
var (
	BudgetLevels = []string{"Budget (₹500-1500/day)", "Moderate (₹1500-4000/day)", "Luxury (₹4000+/day)"}
	TravelStyles = []string{"Relaxed", "Balanced", "Action-Packed"}
)

type field int

const (
	fieldDestination field = iota
	fieldDays
	fieldInterests
	fieldBudget
	fieldStyle
	fieldGenerate
	fieldCount
)

const interestWindow = 6

// Model is the Bubble Tea model for the itinerary builder.
type Model struct {
	service  PlannerPort
	opts     Options
	focus    field
	destIdx  int // 0 is "no destination"
	days     textinput.Model
	cursor   int
	selected map[int]bool
	budget   int
	style    int
	viewport viewport.Model
	result   *domain.Itinerary
	status   string
	isErr    bool
	ready    bool
}

// New creates a new TUI model instance.
func New(service PlannerPort, opts Options) Model {
	if opts.MaxDays <= 0 {
		opts.MaxDays = domain.MaxDays
	}
	if opts.DefaultDays <= 0 {
		opts.DefaultDays = 3
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 2
	ti.Width = 4
	ti.SetValue(strconv.Itoa(opts.DefaultDays))
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		opts:     opts,
		days:     ti,
		selected: make(map[int]bool),
		viewport: vp,
		status:   "Pick a destination and interests, then Generate.",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		reserved := lipgloss.Height(m.renderForm()) + 3 // header + status + spacer
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, msg.Height-reserved-rh)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			return m.setFocus((m.focus + 1) % fieldCount), nil
		case "shift+tab":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
		switch m.focus {
		case fieldDestination:
			m.destIdx = cycle(m.destIdx, len(m.opts.Destinations)+1, msg.String())
		case fieldBudget:
			m.budget = cycle(m.budget, len(BudgetLevels), msg.String())
		case fieldStyle:
			m.style = cycle(m.style, len(TravelStyles), msg.String())
		case fieldInterests:
			m = m.updateInterests(msg.String())
		case fieldDays:
			if msg.String() == "enter" {
				return m.generate(), nil
			}
			var cmd tea.Cmd
			m.days, cmd = m.days.Update(msg)
			return m, cmd
		case fieldGenerate:
			if msg.String() == "enter" || msg.String() == " " {
				return m.generate(), nil
			}
		}
	}
	return m, nil
}

func (m Model) setFocus(f field) Model {
	m.focus = f
	if f == fieldDays {
		m.days.Focus()
	} else {
		m.days.Blur()
	}
	return m
}

func (m Model) updateInterests(key string) Model {
	n := len(m.opts.Interests)
	if n == 0 {
		return m
	}
	switch key {
	case "down", "j":
		m.cursor = (m.cursor + 1) % n
	case "up", "k":
		m.cursor = (m.cursor - 1 + n) % n
	case " ", "x":
		m.selected[m.cursor] = !m.selected[m.cursor]
	}
	return m
}

func cycle(idx, n int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "right", "l":
		return (idx + 1) % n
	case "left", "h":
		return (idx - 1 + n) % n
	}
	return idx
}

// Query assembles the query the form currently describes.
func (m Model) Query() domain.UserQuery {
	days, _ := strconv.Atoi(strings.TrimSpace(m.days.Value()))
	var interests []string
	for i, name := range m.opts.Interests {
		if m.selected[i] {
			interests = append(interests, name)
		}
	}
	return domain.UserQuery{
		Destination:      m.destination(),
		Interests:        interests,
		Days:             days,
		ActivitiesPerDay: m.opts.ActivitiesPerDay,
		BudgetLevel:      BudgetLevels[m.budget],
		TravelStyle:      TravelStyles[m.style],
	}
}

func (m Model) destination() string {
	if m.destIdx == 0 || m.destIdx > len(m.opts.Destinations) {
		return ""
	}
	return m.opts.Destinations[m.destIdx-1]
}

func (m Model) generate() Model {
	it, err := m.service.Recommend(context.Background(), m.Query())
	if err != nil {
		m.isErr = true
		m.result = nil
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			m.status = verr.Message
		} else {
			m.status = "Error: " + err.Error()
		}
	} else {
		m.isErr = false
		m.result = &it
		if it.Empty() {
			m.status = fmt.Sprintf("No matching activities found in %s.", it.Destination)
		} else {
			m.status = fmt.Sprintf("Itinerary ready: %d day(s) in %s.", len(it.Days), it.Destination)
		}
	}
	m.viewport.SetContent(m.renderResult())
	m.viewport.GotoTop()
	return m
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("India Travel AI Itinerary Builder")
	statusStyle := okStyle
	if m.isErr {
		statusStyle = errStyle
	}
	return header + "\n" + m.renderForm() + "\n" + statusStyle.Render(m.status) + "\n" + resultBoxStyle.Render(m.viewport.View())
}

func (m Model) renderForm() string {
	var b strings.Builder
	dest := m.destination()
	if dest == "" {
		dest = "(select)"
	}
	b.WriteString(m.label(fieldDestination, "Destination") + "‹ " + dest + " ›\n")
	b.WriteString(m.label(fieldDays, fmt.Sprintf("Trip Duration (1-%d)", m.opts.MaxDays)) + m.days.View() + "\n")
	b.WriteString(m.label(fieldInterests, "Interests") + fmt.Sprintf("%d selected\n", len(m.Query().Interests)))
	start := 0
	if m.cursor >= interestWindow {
		start = m.cursor - interestWindow + 1
	}
	for i := start; i < start+interestWindow; i++ {
		if i >= len(m.opts.Interests) {
			b.WriteString("\n")
			continue
		}
		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("    %s %s", mark, m.opts.Interests[i])
		if m.focus == fieldInterests && i == m.cursor {
			line = focusStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(m.label(fieldBudget, "Budget Level") + "‹ " + BudgetLevels[m.budget] + " ›\n")
	b.WriteString(m.label(fieldStyle, "Travel Style") + "‹ " + TravelStyles[m.style] + " ›\n")
	button := buttonStyle.Render("Generate Itinerary")
	if m.focus == fieldGenerate {
		button = buttonFocusStyle.Render("Generate Itinerary")
	}
	b.WriteString(button)
	return b.String()
}

func (m Model) label(f field, text string) string {
	style := labelStyle
	prefix := "  "
	if m.focus == f {
		style = focusStyle
		prefix = "> "
	}
	return style.Render(fmt.Sprintf("%s%-22s", prefix, text))
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "No itinerary yet. Tab between fields, ←/→ to choose, space to toggle interests."
	}
	return RenderItinerary(*m.result)
}

var (
	resultBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder())
	buttonFocusStyle = buttonStyle.Copy().BorderForeground(lipgloss.Color("11")).Bold(true)
)
