package browser_test

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"

	training "trainbook/internal/domain/training"
)

// TestStats_GroupsByName verifies the statistics page groups the same name
// across trainings into one row and shows the headline cards.
func TestStats_GroupsByName(t *testing.T) {
	app := newTestApp(t)
	page := app.newPage(t)

	ctx := context.Background()
	store := app.Stores.TrainingStore
	first, err := store.AddTraining(ctx, training.Training{
		Period: training.PeriodQuarter, Department: "IT", Name: "Excel",
		Type: training.TypeOnLine, Provider: "Acme", ProviderType: training.ProviderExternal,
		Category: "IT", DateRange: training.DateRange{StartDate: "2025-01-10", EndDate: "2025-01-10"},
	})
	if err != nil {
		t.Fatalf("seed training: %v", err)
	}
	second, err := store.AddTraining(ctx, training.Training{
		Period: training.PeriodQuarter, Department: "IT", Name: "Power BI",
		Type: training.TypeOnLine, Provider: "Acme", ProviderType: training.ProviderExternal,
		Category: "IT", DateRange: training.DateRange{StartDate: "2025-02-10", EndDate: "2025-02-10"},
	})
	if err != nil {
		t.Fatalf("seed training: %v", err)
	}
	for _, trainingID := range []string{first.ID, second.ID} {
		if _, err := store.AddParticipant(ctx, trainingID, training.Participant{
			FirstName: "Anna", LastName: "Nowak", Department: "IT",
			HoursAttended: 5, AttendanceChecked: true,
		}); err != nil {
			t.Fatalf("seed participant: %v", err)
		}
	}

	if _, err := page.Goto(app.BaseURL + "/stats/participants"); err != nil {
		t.Fatalf("failed to navigate to stats: %v", err)
	}

	// One row for Anna Nowak, counted across both trainings.
	row := page.Locator("tbody tr", playwright.PageLocatorOptions{
		HasText: "Anna Nowak",
	})
	if err := row.WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	}); err != nil {
		t.Fatalf("stats row not visible: %v", err)
	}
	count, err := page.Locator("tbody tr").Count()
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("stats rows = %d, want 1 (same name groups into one subject)", count)
	}

	// Headline cards: most active person and perfect attendance.
	if err := page.Locator(".card >> text=Anna Nowak").First().WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(3000),
	}); err != nil {
		t.Error("most active card does not name Anna Nowak")
	}
	if err := page.Locator("tbody >> text=Excel, Power BI").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(3000),
	}); err != nil {
		t.Error("trainings list column missing attended training names")
	}
}
