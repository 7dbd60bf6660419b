package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trainbook/internal/domain/export"
	domain "trainbook/internal/domain/training"
)

// mockImportStore implements importTrainingStore for testing.
type mockImportStore struct {
	replaced   [][]domain.Training
	replaceErr error
}

// ReplaceAll implements importTrainingStore.
// PRE: trainings is the parsed collection
// POST: the call is recorded, or the configured error returned
func (m *mockImportStore) ReplaceAll(_ context.Context, trainings []domain.Training) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = append(m.replaced, trainings)
	return nil
}

// TestExecuteImportData verifies a valid document overwrites the store.
func TestExecuteImportData(t *testing.T) {
	store := &mockImportStore{}
	input := ImportDataInput{Reader: strings.NewReader(`{
		"exportDate": "2025-03-15T10:30:00Z",
		"version": "1.0",
		"trainings": [
			{"id": "t-1", "name": "Excel", "participants": [
				{"id": "p-1", "trainingId": "t-1", "firstName": "Jan", "lastName": "Kowalski",
				 "department": "IT", "hoursAttended": 8, "attendanceChecked": true}
			]},
			{"id": "t-2", "name": "Security", "participants": []}
		]
	}`)}

	result, err := ExecuteImportData(context.Background(), input, ImportDataDeps{TrainingStore: store})
	if err != nil {
		t.Fatalf("ExecuteImportData() error = %v", err)
	}
	if result.Trainings != 2 || result.Participants != 1 {
		t.Errorf("result = %+v, want 2 trainings, 1 participant", result)
	}
	if len(store.replaced) != 1 {
		t.Fatalf("ReplaceAll called %d times, want 1", len(store.replaced))
	}
	got := store.replaced[0]
	if len(got) != 2 || got[0].ID != "t-1" || got[1].ID != "t-2" {
		t.Errorf("replaced collection = %+v, want the document order", got)
	}
}

// TestExecuteImportDataRejectsBadDocuments verifies the gate: no write
// happens for malformed or wrong-shaped input.
func TestExecuteImportDataRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "malformed JSON",
			input:   `{"trainings": [`,
			wantErr: export.ErrMalformedDocument,
		},
		{
			name:    "missing trainings",
			input:   `{"version": "1.0"}`,
			wantErr: export.ErrMissingTrainings,
		},
		{
			name:    "trainings not an array",
			input:   `{"trainings": {"id": "t-1"}}`,
			wantErr: export.ErrMissingTrainings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockImportStore{}
			_, err := ExecuteImportData(context.Background(),
				ImportDataInput{Reader: strings.NewReader(tt.input)},
				ImportDataDeps{TrainingStore: store})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if len(store.replaced) != 0 {
				t.Errorf("store was written despite rejected input")
			}
		})
	}
}

// TestExecuteImportDataReplaceFailure verifies store errors propagate.
func TestExecuteImportDataReplaceFailure(t *testing.T) {
	store := &mockImportStore{replaceErr: errors.New("boom")}
	_, err := ExecuteImportData(context.Background(),
		ImportDataInput{Reader: strings.NewReader(`{"trainings": []}`)},
		ImportDataDeps{TrainingStore: store})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TestExportThenImportRoundTrip verifies the two orchestrators compose into
// an identity on the trainings collection.
func TestExportThenImportRoundTrip(t *testing.T) {
	origNow := timeNow
	timeNow = func() time.Time { return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = origNow })

	snapshot := []domain.Training{{
		ID:           "t-1",
		Period:       domain.PeriodYear,
		Department:   "IT",
		Name:         "Security",
		Type:         domain.TypeOnLine,
		Provider:     "Acme",
		ProviderType: domain.ProviderExternal,
		TrainingCost: 100,
		OtherCosts:   50,
		TotalCost:    150,
		Category:     "Compliance",
		DateRange:    domain.DateRange{StartDate: "2025-01-01", EndDate: "2025-01-02"},
		EntryDate:    "2025-01-01",
		Participants: []domain.Participant{
			{ID: "p-1", TrainingID: "t-1", FirstName: "Jan", LastName: "Kowalski", Department: "IT", HoursAttended: 8, AttendanceChecked: true},
		},
	}}

	doc, err := ExecuteExportData(context.Background(), ExportDataDeps{
		TrainingStore: &mockExportStore{trainings: snapshot},
	})
	if err != nil {
		t.Fatalf("ExecuteExportData() error = %v", err)
	}
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	store := &mockImportStore{}
	result, err := ExecuteImportData(context.Background(),
		ImportDataInput{Reader: strings.NewReader(string(data))},
		ImportDataDeps{TrainingStore: store})
	if err != nil {
		t.Fatalf("ExecuteImportData() error = %v", err)
	}
	if result.Trainings != 1 || result.Participants != 1 {
		t.Errorf("result = %+v, want 1/1", result)
	}

	got := store.replaced[0]
	if len(got) != 1 {
		t.Fatalf("replaced %d trainings, want 1", len(got))
	}
	if got[0].ID != "t-1" || got[0].TotalCost != 150 || got[0].EntryDate != "2025-01-01" {
		t.Errorf("round trip altered the record: %+v", got[0])
	}
	if len(got[0].Participants) != 1 || got[0].Participants[0].ID != "p-1" {
		t.Errorf("round trip altered participants: %+v", got[0].Participants)
	}
}
