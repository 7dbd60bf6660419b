package orchestrators

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"trainbook/internal/domain/export"
	domain "trainbook/internal/domain/training"
)

// ImportDataInput carries the raw import document.
// PRE: Reader yields the full JSON document.
// POST: On success the store holds exactly the imported records; on any
// failure the previous collection is untouched.
// INVARIANT: Import is a full overwrite, never a merge; ids are kept verbatim.
type ImportDataInput struct {
	Reader io.Reader
}

// ImportDataResult holds aggregate counts from a completed import.
type ImportDataResult struct {
	Trainings    int
	Participants int
}

// importTrainingStore defines the store interface for the import orchestrator.
type importTrainingStore interface {
	ReplaceAll(ctx context.Context, trainings []domain.Training) error
}

// ImportDataDeps holds external dependencies for the import orchestrator.
type ImportDataDeps struct {
	TrainingStore importTrainingStore
}

// ExecuteImportData parses an export document and replaces the whole
// trainings collection with its contents. Malformed input (bad JSON, or a
// missing/wrong-shaped trainings field) fails before any write, so no
// partial-import state is ever observable. The caller owns any user-facing
// message and any pre-overwrite warning.
// PRE: Input.Reader is non-nil
// POST: Returns counts on success; on error the store is untouched
func ExecuteImportData(ctx context.Context, input ImportDataInput, deps ImportDataDeps) (ImportDataResult, error) {
	data, err := io.ReadAll(input.Reader)
	if err != nil {
		return ImportDataResult{}, fmt.Errorf("read import document: %w", err)
	}

	doc, err := export.ParseDocument(data)
	if err != nil {
		slog.Warn("data_import_rejected", "error", err.Error())
		return ImportDataResult{}, err
	}

	if err := deps.TrainingStore.ReplaceAll(ctx, doc.Trainings); err != nil {
		return ImportDataResult{}, fmt.Errorf("replace collection: %w", err)
	}

	result := ImportDataResult{Trainings: len(doc.Trainings)}
	for _, t := range doc.Trainings {
		result.Participants += len(t.Participants)
	}
	slog.Info("data_import",
		"trainings", result.Trainings,
		"participants", result.Participants,
		"document_version", doc.Version,
	)
	return result, nil
}
