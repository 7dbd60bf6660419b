package projections

import (
	"context"
	"sort"

	domain "trainbook/internal/domain/training"
)

// ParticipantStatistics is the per-person rollup. Statistical identity is
// the (FirstName, LastName) pair, not the participant id: the same person
// recorded under two trainings is one statistical subject, and a name typo
// silently creates a distinct one. Known limitation, kept on purpose.
type ParticipantStatistics struct {
	FullName            string   `json:"fullName"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Department          string   `json:"department"` // last-seen value wins
	TotalTrainings      int      `json:"totalTrainings"`
	TotalHours          float64  `json:"totalHours"`
	AverageHours        float64  `json:"averageHours"`
	AttendanceRate      float64  `json:"attendanceRate"` // percentage, 0-100
	ConfirmedAttendance int      `json:"confirmedAttendance"`
	TrainingsList       []string `json:"trainingsList"`
}

// OverallStatistics is the dataset-wide rollup. OverallAttendanceRate is
// the simple mean of each person's own rate, not a pooled confirmed/total
// ratio across all instances.
type OverallStatistics struct {
	TotalParticipants         int     `json:"totalParticipants"`
	TotalTrainingInstances    int     `json:"totalTrainingInstances"`
	TotalHours                float64 `json:"totalHours"`
	AverageTrainingsPerPerson float64 `json:"averageTrainingsPerPerson"`
	AverageHoursPerPerson     float64 `json:"averageHoursPerPerson"`
	OverallAttendanceRate     float64 `json:"overallAttendanceRate"`
}

// KeyInsights carries the headline figures shown above the stats table.
type KeyInsights struct {
	MostActiveName         string  `json:"mostActiveName"`
	MostActiveTrainings    int     `json:"mostActiveTrainings"`
	MostHoursName          string  `json:"mostHoursName"`
	MostHours              float64 `json:"mostHours"`
	PerfectAttendanceCount int     `json:"perfectAttendanceCount"`
}

// ParticipantStatsResult carries the query result. Overall and Insights are
// nil when no participants exist anywhere.
type ParticipantStatsResult struct {
	Participants []ParticipantStatistics `json:"participants"`
	Overall      *OverallStatistics      `json:"overall,omitempty"`
	Insights     *KeyInsights            `json:"insights,omitempty"`
}

// StatsTrainingStore defines the store interface for this projection.
type StatsTrainingStore interface {
	List(ctx context.Context) ([]domain.Training, error)
}

// ParticipantStatsDeps holds dependencies for QueryParticipantStats.
type ParticipantStatsDeps struct {
	TrainingStore StatsTrainingStore
}

// QueryParticipantStats derives per-person and overall rollups from the
// current trainings snapshot. Pure read: no mutation, no state of its own.
// PRE: deps.TrainingStore is non-nil
// POST: Participants sorted by TotalTrainings desc, ties by TotalHours
// desc; empty result with nil rollups when no participants exist
func QueryParticipantStats(ctx context.Context, deps ParticipantStatsDeps) (ParticipantStatsResult, error) {
	trainings, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return ParticipantStatsResult{}, err
	}

	type nameKey struct{ first, last string }
	groups := make(map[nameKey]*ParticipantStatistics)
	var order []nameKey

	for _, t := range trainings {
		for _, p := range t.Participants {
			key := nameKey{p.FirstName, p.LastName}
			g, ok := groups[key]
			if !ok {
				g = &ParticipantStatistics{
					FullName:      p.FirstName + " " + p.LastName,
					FirstName:     p.FirstName,
					LastName:      p.LastName,
					TrainingsList: []string{},
				}
				groups[key] = g
				order = append(order, key)
			}
			g.TotalTrainings++
			g.TotalHours += p.HoursAttended
			g.TrainingsList = append(g.TrainingsList, t.Name)
			if p.AttendanceChecked {
				g.ConfirmedAttendance++
			}
			// Later trainings overwrite earlier department values.
			g.Department = p.Department
		}
	}

	if len(order) == 0 {
		return ParticipantStatsResult{Participants: []ParticipantStatistics{}}, nil
	}

	participants := make([]ParticipantStatistics, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.AverageHours = g.TotalHours / float64(g.TotalTrainings)
		g.AttendanceRate = float64(g.ConfirmedAttendance) / float64(g.TotalTrainings) * 100
		participants = append(participants, *g)
	}

	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].TotalTrainings != participants[j].TotalTrainings {
			return participants[i].TotalTrainings > participants[j].TotalTrainings
		}
		return participants[i].TotalHours > participants[j].TotalHours
	})

	overall := &OverallStatistics{TotalParticipants: len(participants)}
	for _, p := range participants {
		overall.TotalTrainingInstances += p.TotalTrainings
		overall.TotalHours += p.TotalHours
		overall.OverallAttendanceRate += p.AttendanceRate
	}
	n := float64(len(participants))
	overall.AverageTrainingsPerPerson = float64(overall.TotalTrainingInstances) / n
	overall.AverageHoursPerPerson = overall.TotalHours / n
	overall.OverallAttendanceRate /= n

	insights := &KeyInsights{
		MostActiveName:      participants[0].FullName,
		MostActiveTrainings: participants[0].TotalTrainings,
		MostHoursName:       participants[0].FullName,
		MostHours:           participants[0].TotalHours,
	}
	for _, p := range participants {
		if p.TotalHours > insights.MostHours {
			insights.MostHoursName = p.FullName
			insights.MostHours = p.TotalHours
		}
		if p.AttendanceRate == 100 {
			insights.PerfectAttendanceCount++
		}
	}

	return ParticipantStatsResult{
		Participants: participants,
		Overall:      overall,
		Insights:     insights,
	}, nil
}
