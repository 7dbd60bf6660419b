package orchestrators

import (
	"context"
	"testing"

	trainingStore "trainbook/internal/adapters/storage/training"
)

// TestExecuteSeedSynthetic verifies seeding fills an empty store.
func TestExecuteSeedSynthetic(t *testing.T) {
	ctx := context.Background()
	store := trainingStore.NewMemoryStore()

	if err := ExecuteSeedSynthetic(ctx, SeedSyntheticDeps{TrainingStore: store}); err != nil {
		t.Fatalf("ExecuteSeedSynthetic() error = %v", err)
	}

	all, _ := store.List(ctx)
	if len(all) == 0 {
		t.Fatal("store still empty after seeding")
	}
	participants := 0
	for _, tr := range all {
		if tr.ID == "" || tr.EntryDate == "" {
			t.Errorf("seeded training missing generated fields: %+v", tr)
		}
		if tr.TotalCost != tr.TrainingCost+tr.OtherCosts {
			t.Errorf("seeded training breaks cost invariant: %+v", tr)
		}
		for _, p := range tr.Participants {
			if p.TrainingID != tr.ID {
				t.Errorf("participant %q not bound to its training", p.ID)
			}
		}
		participants += len(tr.Participants)
	}
	if participants == 0 {
		t.Error("no participants were seeded")
	}
}

// TestExecuteSeedSyntheticIdempotent verifies a non-empty store is left alone.
func TestExecuteSeedSyntheticIdempotent(t *testing.T) {
	ctx := context.Background()
	store := trainingStore.NewMemoryStore()

	if err := ExecuteSeedSynthetic(ctx, SeedSyntheticDeps{TrainingStore: store}); err != nil {
		t.Fatalf("first seed error = %v", err)
	}
	before, _ := store.List(ctx)

	if err := ExecuteSeedSynthetic(ctx, SeedSyntheticDeps{TrainingStore: store}); err != nil {
		t.Fatalf("second seed error = %v", err)
	}
	after, _ := store.List(ctx)

	if len(after) != len(before) {
		t.Errorf("second seed changed the collection: %d -> %d", len(before), len(after))
	}
}
