package storage

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"trainbook/internal/adapters/http/perf"
	trainingStore "trainbook/internal/adapters/storage/training"
	domain "trainbook/internal/domain/training"
	"trainbook/internal/metrics"
)

// DefaultSlowOpMs is the default threshold for slow store-operation warnings.
const DefaultSlowOpMs = 50

var slowOpMs int64
var slowOpOnce sync.Once

// getSlowOpThreshold returns the slow-operation threshold in milliseconds.
func getSlowOpThreshold() float64 {
	slowOpOnce.Do(func() {
		ms := DefaultSlowOpMs
		if v := os.Getenv("TRAINBOOK_SLOW_OP_MS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				ms = n
			}
		}
		atomic.StoreInt64(&slowOpMs, int64(ms))
	})
	return float64(atomic.LoadInt64(&slowOpMs))
}

// TimedStore wraps a training Store with timing instrumentation: slow
// operations are logged, every operation is recorded to the perf collector
// and Prometheus, and dataset gauges are refreshed after each mutation.
// Satisfies the Store interface so it can be passed anywhere a Store is.
type TimedStore struct {
	inner     trainingStore.Store
	collector *perf.Collector
	threshold float64
}

// Compile-time check that *TimedStore satisfies the Store interface.
var _ trainingStore.Store = (*TimedStore)(nil)

// NewTimedStore wraps a Store with timing instrumentation.
// PRE: inner is a ready-to-use Store; collector may be nil
// POST: Returns a TimedStore that logs slow operations and records timings
func NewTimedStore(inner trainingStore.Store, collector *perf.Collector) *TimedStore {
	return &TimedStore{
		inner:     inner,
		collector: collector,
		threshold: getSlowOpThreshold(),
	}
}

// observe logs and records one operation timing.
func (t *TimedStore) observe(op string, start time.Time) {
	elapsed := time.Since(start)
	durationMs := float64(elapsed.Microseconds()) / 1000.0

	if durationMs >= t.threshold {
		slog.Warn("slow_store_op", "op", op, "duration_ms", durationMs)
	} else {
		slog.Debug("store_op", "op", op, "duration_ms", durationMs)
	}

	if t.collector != nil {
		t.collector.Record(perf.Entry{
			Kind:       perf.KindStoreOp,
			Path:       "store." + op,
			DurationMs: durationMs,
			Timestamp:  start,
		})
	}
	metrics.ObserveStoreOp(op, elapsed)
}

// refreshGauges updates the dataset size gauges from the current snapshot.
func (t *TimedStore) refreshGauges(ctx context.Context) {
	all, err := t.inner.List(ctx)
	if err != nil {
		return
	}
	participants := 0
	for _, tr := range all {
		participants += len(tr.Participants)
	}
	metrics.SetCollectionSize(len(all), participants)
}

// AddTraining delegates with instrumentation.
func (t *TimedStore) AddTraining(ctx context.Context, data domain.Training) (domain.Training, error) {
	defer t.observe("AddTraining", time.Now())
	created, err := t.inner.AddTraining(ctx, data)
	t.refreshGauges(ctx)
	return created, err
}

// UpdateTraining delegates with instrumentation.
func (t *TimedStore) UpdateTraining(ctx context.Context, id string, data domain.Training) error {
	defer t.observe("UpdateTraining", time.Now())
	return t.inner.UpdateTraining(ctx, id, data)
}

// DeleteTraining delegates with instrumentation.
func (t *TimedStore) DeleteTraining(ctx context.Context, id string) error {
	defer t.observe("DeleteTraining", time.Now())
	err := t.inner.DeleteTraining(ctx, id)
	t.refreshGauges(ctx)
	return err
}

// GetTrainingByID delegates with instrumentation.
func (t *TimedStore) GetTrainingByID(ctx context.Context, id string) (domain.Training, error) {
	defer t.observe("GetTrainingByID", time.Now())
	return t.inner.GetTrainingByID(ctx, id)
}

// AddParticipant delegates with instrumentation.
func (t *TimedStore) AddParticipant(ctx context.Context, trainingID string, data domain.Participant) (domain.Participant, error) {
	defer t.observe("AddParticipant", time.Now())
	created, err := t.inner.AddParticipant(ctx, trainingID, data)
	t.refreshGauges(ctx)
	return created, err
}

// UpdateParticipant delegates with instrumentation.
func (t *TimedStore) UpdateParticipant(ctx context.Context, trainingID, participantID string, data domain.Participant) error {
	defer t.observe("UpdateParticipant", time.Now())
	return t.inner.UpdateParticipant(ctx, trainingID, participantID, data)
}

// DeleteParticipant delegates with instrumentation.
func (t *TimedStore) DeleteParticipant(ctx context.Context, trainingID, participantID string) error {
	defer t.observe("DeleteParticipant", time.Now())
	err := t.inner.DeleteParticipant(ctx, trainingID, participantID)
	t.refreshGauges(ctx)
	return err
}

// GetParticipantsByTraining delegates with instrumentation.
func (t *TimedStore) GetParticipantsByTraining(ctx context.Context, trainingID string) ([]domain.Participant, error) {
	defer t.observe("GetParticipantsByTraining", time.Now())
	return t.inner.GetParticipantsByTraining(ctx, trainingID)
}

// List delegates with instrumentation.
func (t *TimedStore) List(ctx context.Context) ([]domain.Training, error) {
	defer t.observe("List", time.Now())
	return t.inner.List(ctx)
}

// ReplaceAll delegates with instrumentation.
func (t *TimedStore) ReplaceAll(ctx context.Context, trainings []domain.Training) error {
	defer t.observe("ReplaceAll", time.Now())
	err := t.inner.ReplaceAll(ctx, trainings)
	t.refreshGauges(ctx)
	return err
}
