package training

import (
	"context"
	"errors"

	domain "trainbook/internal/domain/training"
)

// ErrNotFound is returned by reads when no training matches the id.
// Mutators never return it: operating on an unknown id is a silent no-op.
var ErrNotFound = errors.New("training not found")

// Store owns the authoritative trainings collection. Every mutation is
// atomic with respect to readers: callers only ever observe complete
// snapshots, never a half-applied write.
type Store interface {
	// AddTraining assigns a fresh id, stamps EntryDate with the current
	// date, initializes an empty participant list, recomputes TotalCost
	// and appends the record. Fields are assumed pre-validated.
	AddTraining(ctx context.Context, data domain.Training) (domain.Training, error)

	// UpdateTraining replaces every field of the matching training except
	// ID, EntryDate and Participants, which are preserved. TotalCost is
	// recomputed. No-op when id is unknown.
	UpdateTraining(ctx context.Context, id string, data domain.Training) error

	// DeleteTraining removes the matching training; its participants are
	// discarded with it. No-op when id is unknown.
	DeleteTraining(ctx context.Context, id string) error

	// GetTrainingByID returns the matching training or ErrNotFound.
	GetTrainingByID(ctx context.Context, id string) (domain.Training, error)

	// AddParticipant assigns a fresh id, stamps TrainingID and appends to
	// the named training's participant list. When the training is unknown
	// the call is a silent no-op returning a zero Participant.
	AddParticipant(ctx context.Context, trainingID string, data domain.Participant) (domain.Participant, error)

	// UpdateParticipant replaces every field of the matching participant
	// except ID and TrainingID. No-op when either id is unknown.
	UpdateParticipant(ctx context.Context, trainingID, participantID string, data domain.Participant) error

	// DeleteParticipant removes the matching participant from the named
	// training's list. No-op when either id is unknown.
	DeleteParticipant(ctx context.Context, trainingID, participantID string) error

	// GetParticipantsByTraining returns the training's participant list,
	// or an empty list when the training is unknown.
	GetParticipantsByTraining(ctx context.Context, trainingID string) ([]domain.Participant, error)

	// List returns a deep-copied snapshot of the whole collection in
	// insertion order.
	List(ctx context.Context) ([]domain.Training, error)

	// ReplaceAll overwrites the whole collection verbatim: no merge, no id
	// regeneration, no recomputation. Used by import.
	ReplaceAll(ctx context.Context, trainings []domain.Training) error
}
