package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultActivitiesPerDay is used when a query leaves ActivitiesPerDay unset.
const DefaultActivitiesPerDay = 3

// MaxDays bounds the trip length a query may ask for.
const MaxDays = 30

// ErrInvalidQuery is matched by every ValidationError.
var ErrInvalidQuery = errors.New("invalid query")

// MissingFieldsMessage is shown when destination or interests are absent.
const MissingFieldsMessage = "Please select destination and at least one interest."

// UserQuery is what the presentation layer submits. BudgetLevel and TravelStyle are
// carried through unchanged; nothing in the recommendation reads them.
type UserQuery struct {
	Destination      string   `json:"destination" validate:"required"`
	Interests        []string `json:"interests" validate:"required,min=1,dive,required"`
	Days             int      `json:"days" validate:"gte=1,lte=30"`
	ActivitiesPerDay int      `json:"activitiesPerDay" validate:"gte=0"`
	BudgetLevel      string   `json:"budgetLevel,omitempty"`
	TravelStyle      string   `json:"travelStyle,omitempty"`
}

// ValidationError lists the query fields that failed validation.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrInvalidQuery) succeed.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidQuery }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the query and returns a *ValidationError on failure.
func (q UserQuery) Validate() error {
	err := validate.Struct(q.Normalized())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Message: err.Error()}
	}
	out := &ValidationError{}
	missing := false
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		name := fe.StructField()
		if strings.HasPrefix(name, "Interests[") {
			name = "Interests"
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out.Fields = append(out.Fields, name)
		if name == "Destination" || name == "Interests" {
			missing = true
		}
	}
	switch {
	case missing:
		out.Message = MissingFieldsMessage
	case slices.Contains(out.Fields, "Days"):
		out.Message = "Trip duration must be between 1 and 30 days."
	default:
		out.Message = "Activities per day must not be negative."
	}
	return out
}

// Normalized trims the destination, drops blank and repeated interests and applies
// the activities-per-day default.
func (q UserQuery) Normalized() UserQuery {
	q.Destination = strings.TrimSpace(q.Destination)
	seen := make(map[string]struct{}, len(q.Interests))
	interests := make([]string, 0, len(q.Interests))
	for _, in := range q.Interests {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}
		interests = append(interests, in)
	}
	q.Interests = interests
	if q.ActivitiesPerDay == 0 {
		q.ActivitiesPerDay = DefaultActivitiesPerDay
	}
	return q
}
