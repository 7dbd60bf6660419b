package training

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "trainbook/internal/domain/training"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID is a variable for testability. Production uses random UUIDs,
// so collisions within a process are cryptographically negligible.
var generateID = func() string { return uuid.New().String() }

// MemoryStore keeps the trainings collection in process memory. Data lives
// only for the process lifetime and is lost on shutdown unless exported.
// A single mutex serializes all operations, standing in for the one-at-a-
// time event dispatch of a browser UI; reads hand out deep copies so no
// caller can observe or cause partial mutation.
type MemoryStore struct {
	mu        sync.Mutex
	trainings []domain.Training
}

// Compile-time check that *MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTraining appends a new training record.
// PRE: data has been validated by the caller
// POST: Collection grows by exactly one; the new record has a fresh id,
// today's EntryDate, an empty participant list and TotalCost recomputed
func (s *MemoryStore) AddTraining(_ context.Context, data domain.Training) (domain.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := data.Clone()
	t.ID = generateID()
	t.EntryDate = timeNow().Format(domain.DateLayout)
	t.Participants = []domain.Participant{}
	t.RecomputeTotalCost()

	s.trainings = append(s.trainings, t)
	return t.Clone(), nil
}

// UpdateTraining replaces the fields of the matching training.
// PRE: data has been validated by the caller
// POST: ID, EntryDate and Participants of the target are unchanged;
// TotalCost is recomputed. Unknown id leaves the collection untouched
func (s *MemoryStore) UpdateTraining(_ context.Context, id string, data domain.Training) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	t := data.Clone()
	t.ID = s.trainings[i].ID
	t.EntryDate = s.trainings[i].EntryDate
	t.Participants = s.trainings[i].Participants
	t.RecomputeTotalCost()

	s.trainings[i] = t
	return nil
}

// DeleteTraining removes the matching training and its participants.
// POST: Unknown id leaves the collection untouched
func (s *MemoryStore) DeleteTraining(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.trainings = append(s.trainings[:i], s.trainings[i+1:]...)
	return nil
}

// GetTrainingByID retrieves a training by its id.
// POST: Returns a deep copy of the entity or ErrNotFound
func (s *MemoryStore) GetTrainingByID(_ context.Context, id string) (domain.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Training{}, fmt.Errorf("get training %q: %w", id, ErrNotFound)
	}
	return s.trainings[i].Clone(), nil
}

// AddParticipant appends a participant to the named training.
// PRE: data has been validated by the caller
// POST: The participant carries a fresh id and the owning trainingID;
// an unknown training leaves every collection untouched
func (s *MemoryStore) AddParticipant(_ context.Context, trainingID string, data domain.Participant) (domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(trainingID)
	if i < 0 {
		return domain.Participant{}, nil
	}

	p := data
	p.ID = generateID()
	p.TrainingID = trainingID

	s.trainings[i].Participants = append(s.trainings[i].Participants, p)
	return p, nil
}

// UpdateParticipant replaces the fields of the matching participant.
// PRE: data has been validated by the caller
// POST: ID and TrainingID of the target are unchanged; unknown ids leave
// the collection untouched
func (s *MemoryStore) UpdateParticipant(_ context.Context, trainingID, participantID string, data domain.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(trainingID)
	if i < 0 {
		return nil
	}
	for j, p := range s.trainings[i].Participants {
		if p.ID == participantID {
			next := data
			next.ID = p.ID
			next.TrainingID = p.TrainingID
			s.trainings[i].Participants[j] = next
			return nil
		}
	}
	return nil
}

// DeleteParticipant removes the matching participant.
// POST: Unknown ids leave the collection untouched
func (s *MemoryStore) DeleteParticipant(_ context.Context, trainingID, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(trainingID)
	if i < 0 {
		return nil
	}
	ps := s.trainings[i].Participants
	for j, p := range ps {
		if p.ID == participantID {
			s.trainings[i].Participants = append(ps[:j], ps[j+1:]...)
			return nil
		}
	}
	return nil
}

// GetParticipantsByTraining returns a copy of the training's participants.
// POST: Returns an empty list when the training is unknown
func (s *MemoryStore) GetParticipantsByTraining(_ context.Context, trainingID string) ([]domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(trainingID)
	if i < 0 {
		return []domain.Participant{}, nil
	}
	out := make([]domain.Participant, len(s.trainings[i].Participants))
	copy(out, s.trainings[i].Participants)
	return out, nil
}

// List returns a deep-copied snapshot of the collection in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]domain.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Training, len(s.trainings))
	for i, t := range s.trainings {
		out[i] = t.Clone()
	}
	return out, nil
}

// ReplaceAll overwrites the collection with the given records verbatim.
// POST: The previous collection is discarded in full; the input is deep-
// copied so later caller mutations cannot reach the store
func (s *MemoryStore) ReplaceAll(_ context.Context, trainings []domain.Training) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Training, len(trainings))
	for i, t := range trainings {
		next[i] = t.Clone()
	}
	s.trainings = next
	return nil
}

// indexOf returns the position of the training with the given id, or -1.
// Caller must hold s.mu.
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.trainings {
		if s.trainings[i].ID == id {
			return i
		}
	}
	return -1
}
