package training

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Max length constants for user-editable fields.
const (
	MaxNameLength = 200
)

// Reporting period buckets.
const (
	PeriodMonth   = "miesiąc"
	PeriodQuarter = "kwartał"
	PeriodYear    = "rok"
)

// Delivery modes.
const (
	TypeOnSite  = "On-site"
	TypeOnLine  = "On-line"
	TypeOffSite = "Off-site"
)

// Provider kinds.
const (
	ProviderInternal = "wewnętrzne"
	ProviderExternal = "zewnętrzne"
)

// Domain errors.
var (
	ErrNameRequired = errors.New("training name cannot be empty")
)

// DateRange is the scheduled span of a training.
type DateRange struct {
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD
}

// Training holds state for one scheduled training event.
// Participants are owned by their Training and never exist outside it;
// deleting a Training discards its participants with it.
type Training struct {
	ID           string        `json:"id"`
	Period       string        `json:"period"`
	Department   string        `json:"department"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Provider     string        `json:"provider"`
	ProviderType string        `json:"providerType"`
	TrainingCost float64       `json:"trainingCost"`
	OtherCosts   float64       `json:"otherCosts"`
	TotalCost    float64       `json:"totalCost"`
	Category     string        `json:"category"`
	DateRange    DateRange     `json:"dateRange"`
	EntryDate    string        `json:"entryDate"` // YYYY-MM-DD, set once at creation
	Participants []Participant `json:"participants"`
}

// Validate checks if the Training has valid data.
// PRE: Training struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name, Department, Provider, Category must not be empty;
// Period, Type, ProviderType must be known values; costs must be >= 0.
// Start/end ordering within DateRange is deliberately not checked.
func (t *Training) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrNameRequired
	}
	if len(t.Name) > MaxNameLength {
		return errors.New("training name cannot exceed 200 characters")
	}
	if strings.TrimSpace(t.Department) == "" {
		return errors.New("training department cannot be empty")
	}
	if strings.TrimSpace(t.Provider) == "" {
		return errors.New("training provider cannot be empty")
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.New("training category cannot be empty")
	}
	if t.Period != PeriodMonth && t.Period != PeriodQuarter && t.Period != PeriodYear {
		return errors.New("period must be 'miesiąc', 'kwartał', or 'rok'")
	}
	if t.Type != TypeOnSite && t.Type != TypeOnLine && t.Type != TypeOffSite {
		return errors.New("type must be 'On-site', 'On-line', or 'Off-site'")
	}
	if t.ProviderType != ProviderInternal && t.ProviderType != ProviderExternal {
		return errors.New("provider type must be 'wewnętrzne' or 'zewnętrzne'")
	}
	if t.TrainingCost < 0 {
		return errors.New("training cost cannot be negative")
	}
	if t.OtherCosts < 0 {
		return errors.New("other costs cannot be negative")
	}
	if _, err := time.Parse(DateLayout, t.DateRange.StartDate); err != nil {
		return errors.New("start date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(DateLayout, t.DateRange.EndDate); err != nil {
		return errors.New("end date must be in YYYY-MM-DD format")
	}
	return nil
}

// RecomputeTotalCost restores the cost invariant.
// POST: TotalCost == TrainingCost + OtherCosts
// INVARIANT: TotalCost is derived, never independently settable
func (t *Training) RecomputeTotalCost() {
	t.TotalCost = t.TrainingCost + t.OtherCosts
}

// Clone returns a deep copy of the Training, including its participants.
// POST: Mutating the copy never affects the receiver
func (t Training) Clone() Training {
	c := t
	if t.Participants != nil {
		c.Participants = make([]Participant, len(t.Participants))
		copy(c.Participants, t.Participants)
	}
	return c
}
