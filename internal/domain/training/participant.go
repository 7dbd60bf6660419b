package training

import (
	"errors"
	"strings"
)

// Participant holds one person's attendance record within a single training.
// TrainingID is a lookup key back to the owning Training, not an ownership
// edge; the Training's participant list is the source of truth.
type Participant struct {
	ID                string  `json:"id"`
	TrainingID        string  `json:"trainingId"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Department        string  `json:"department"`
	HoursAttended     float64 `json:"hoursAttended"`
	AttendanceChecked bool    `json:"attendanceChecked"`
}

// Validate checks if the Participant has valid data.
// PRE: Participant struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: FirstName and LastName must not be empty, HoursAttended >= 0
func (p *Participant) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return errors.New("participant first name cannot be empty")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return errors.New("participant last name cannot be empty")
	}
	if strings.TrimSpace(p.Department) == "" {
		return errors.New("participant department cannot be empty")
	}
	if p.HoursAttended < 0 {
		return errors.New("hours attended cannot be negative")
	}
	return nil
}

// FullName returns the display name used in lists and statistics.
func (p *Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}
