package domain

import "fmt"

// ActivityRecord is a single catalog entry tying an activity to a destination.
type ActivityRecord struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Destination string `json:"destination" yaml:"destination"`
}

// Category groups activity names under a label. Activity order is significant.
type Category struct {
	Name       string   `json:"name" yaml:"name"`
	Activities []string `json:"activities" yaml:"activities"`
}

// Catalog is the ordered set of generated activity records.
type Catalog []ActivityRecord

// TimeSlot is the part of the day an activity is scheduled for.
type TimeSlot string

const (
	Morning   TimeSlot = "Morning"
	Afternoon TimeSlot = "Afternoon"
	Evening   TimeSlot = "Evening"
)

// TimeSlots lists the slots in display order.
var TimeSlots = []TimeSlot{Morning, Afternoon, Evening}

// ActivityEntry is one scheduled activity inside a day plan.
type ActivityEntry struct {
	Time          TimeSlot `json:"time"`
	Activity      string   `json:"activity"`
	Description   string   `json:"description"`
	Duration      int      `json:"duration"`
	EstimatedCost int      `json:"estimatedCost"`
}

// DurationLabel renders the duration the way the itinerary view shows it.
func (e ActivityEntry) DurationLabel() string {
	if e.Duration == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", e.Duration)
}

// CostLabel renders the estimated cost in rupees.
func (e ActivityEntry) CostLabel() string { return fmt.Sprintf("₹%d", e.EstimatedCost) }

// DayPlan is the schedule for a single day, numbered from 1.
type DayPlan struct {
	Day        int             `json:"day"`
	Title      string          `json:"title"`
	Activities []ActivityEntry `json:"activities"`
}

// CostRange is a per-person cost estimate. It is encoded as its display text,
// e.g. "₹3000 - ₹10000 per person".
type CostRange struct {
	Low  int
	High int
}

const costRangeFormat = "₹%d - ₹%d per person"

func (c CostRange) String() string {
	return fmt.Sprintf(costRangeFormat, c.Low, c.High)
}

// MarshalText implements encoding.TextMarshaler.
func (c CostRange) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CostRange) UnmarshalText(text []byte) error {
	var low, high int
	if _, err := fmt.Sscanf(string(text), costRangeFormat, &low, &high); err != nil {
		return fmt.Errorf("parse cost range %q: %w", text, err)
	}
	c.Low, c.High = low, high
	return nil
}

// Itinerary is the result handed to the presentation layer.
type Itinerary struct {
	Destination        string    `json:"destination"`
	Overview           string    `json:"overview"`
	BestTime           string    `json:"bestTime"`
	Days               []DayPlan `json:"days"`
	Tips               []string  `json:"tips"`
	EstimatedTotalCost CostRange `json:"estimatedTotalCost"`
}

// Empty reports whether no day could be scheduled.
func (it Itinerary) Empty() bool { return len(it.Days) == 0 }
