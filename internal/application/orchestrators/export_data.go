package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trainbook/internal/domain/export"
	domain "trainbook/internal/domain/training"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// exportTrainingStore defines the store interface for the export orchestrator.
type exportTrainingStore interface {
	List(ctx context.Context) ([]domain.Training, error)
}

// ExportDataDeps holds external dependencies for the export orchestrator.
type ExportDataDeps struct {
	TrainingStore exportTrainingStore
}

// ExecuteExportData wraps the full trainings snapshot in a versioned
// envelope stamped with the current time. Nothing is filtered or redacted.
// PRE: Deps.TrainingStore is non-nil
// POST: Returns the envelope; store state is unchanged
func ExecuteExportData(ctx context.Context, deps ExportDataDeps) (export.Document, error) {
	trainings, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return export.Document{}, fmt.Errorf("export snapshot: %w", err)
	}

	doc := export.NewDocument(trainings, timeNow())

	participants := 0
	for _, t := range doc.Trainings {
		participants += len(t.Participants)
	}
	slog.Info("data_export",
		"trainings", len(doc.Trainings),
		"participants", participants,
	)
	return doc, nil
}
