package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	trainingStore "trainbook/internal/adapters/storage/training"
	domain "trainbook/internal/domain/training"
)

// SeedSyntheticDeps holds the store needed for synthetic data seeding.
type SeedSyntheticDeps struct {
	TrainingStore trainingStore.Store
}

// ExecuteSeedSynthetic fills an empty store with sample trainings and
// participants for development environments. Idempotent: a non-empty store
// is left alone.
// PRE: Deps.TrainingStore is non-nil
// POST: Store holds the sample dataset, or its prior contents if any
func ExecuteSeedSynthetic(ctx context.Context, deps SeedSyntheticDeps) error {
	existing, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("seed_synthetic_skipped", "trainings", len(existing))
		return nil
	}

	samples := []struct {
		training     domain.Training
		participants []domain.Participant
	}{
		{
			training: domain.Training{
				Period:       domain.PeriodQuarter,
				Department:   "IT",
				Name:         "Bezpieczeństwo informacji",
				Type:         domain.TypeOnLine,
				Provider:     "SecureAcademy",
				ProviderType: domain.ProviderExternal,
				TrainingCost: 2400,
				OtherCosts:   150,
				Category:     "Compliance",
				DateRange:    domain.DateRange{StartDate: "2025-02-10", EndDate: "2025-02-11"},
			},
			participants: []domain.Participant{
				{FirstName: "Jan", LastName: "Kowalski", Department: "IT", HoursAttended: 16, AttendanceChecked: true},
				{FirstName: "Anna", LastName: "Nowak", Department: "IT", HoursAttended: 16, AttendanceChecked: true},
				{FirstName: "Piotr", LastName: "Wiśniewski", Department: "HR", HoursAttended: 8},
			},
		},
		{
			training: domain.Training{
				Period:       domain.PeriodMonth,
				Department:   "HR",
				Name:         "Rozmowy oceniające",
				Type:         domain.TypeOnSite,
				Provider:     "Dział szkoleń",
				ProviderType: domain.ProviderInternal,
				TrainingCost: 0,
				OtherCosts:   320,
				Category:     "Soft skills",
				DateRange:    domain.DateRange{StartDate: "2025-03-05", EndDate: "2025-03-05"},
			},
			participants: []domain.Participant{
				{FirstName: "Anna", LastName: "Nowak", Department: "HR", HoursAttended: 6, AttendanceChecked: true},
				{FirstName: "Ewa", LastName: "Lis", Department: "HR", HoursAttended: 6, AttendanceChecked: false},
			},
		},
		{
			training: domain.Training{
				Period:       domain.PeriodYear,
				Department:   "Finanse",
				Name:         "Zamknięcie roku",
				Type:         domain.TypeOffSite,
				Provider:     "FinConsult",
				ProviderType: domain.ProviderExternal,
				TrainingCost: 5200,
				OtherCosts:   890,
				Category:     "Finanse",
				DateRange:    domain.DateRange{StartDate: "2025-01-20", EndDate: "2025-01-22"},
			},
			participants: []domain.Participant{
				{FirstName: "Ewa", LastName: "Lis", Department: "Finanse", HoursAttended: 24, AttendanceChecked: true},
			},
		},
	}

	for _, s := range samples {
		created, err := deps.TrainingStore.AddTraining(ctx, s.training)
		if err != nil {
			return fmt.Errorf("seed training %q: %w", s.training.Name, err)
		}
		for _, p := range s.participants {
			if _, err := deps.TrainingStore.AddParticipant(ctx, created.ID, p); err != nil {
				return fmt.Errorf("seed participant %q: %w", p.LastName, err)
			}
		}
	}

	slog.Info("seed_synthetic_done", "trainings", len(samples))
	return nil
}
