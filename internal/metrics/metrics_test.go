package metrics

import (
	"testing"
	"time"
)

// TestRegistryGather verifies all metric families register and collect
// without duplicate registration panics.
func TestRegistryGather(t *testing.T) {
	ObserveHTTPRequest("GET", "/trainings", 200, 5*time.Millisecond)
	ObserveStoreOp("AddTraining", 10*time.Microsecond)
	SetCollectionSize(3, 7)
	IncExport()
	IncImport(true)
	IncImport(false)

	families, err := Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"trainbook_http_requests_total",
		"trainbook_http_request_duration_seconds",
		"trainbook_store_operations_total",
		"trainbook_store_operation_duration_seconds",
		"trainbook_trainings_count",
		"trainbook_participants_count",
		"trainbook_exports_total",
		"trainbook_imports_total",
	} {
		if !names[want] {
			t.Errorf("metric family %q not gathered", want)
		}
	}
}
