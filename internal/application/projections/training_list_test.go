package projections

import (
	"context"
	"errors"
	"testing"

	domain "trainbook/internal/domain/training"
)

func listDeps(trainings ...domain.Training) TrainingListDeps {
	return TrainingListDeps{TrainingStore: &mockStatsStore{trainings: trainings}}
}

func sampleTrainings() []domain.Training {
	return []domain.Training{
		{ID: "t1", Name: "Excel dla analityków", Department: "Finanse", Period: domain.PeriodQuarter, Type: domain.TypeOnLine, Provider: "Acme", ProviderType: domain.ProviderExternal, Category: "IT", TotalCost: 300, EntryDate: "2025-03-01"},
		{ID: "t2", Name: "BHP wstępne", Department: "Produkcja", Period: domain.PeriodYear, Type: domain.TypeOnSite, Provider: "Dział HR", ProviderType: domain.ProviderInternal, Category: "Compliance", TotalCost: 100, EntryDate: "2025-01-15"},
		{ID: "t3", Name: "Negocjacje handlowe", Department: "Sprzedaż", Period: domain.PeriodQuarter, Type: domain.TypeOffSite, Provider: "SalesPro", ProviderType: domain.ProviderExternal, Category: "Soft skills", TotalCost: 900, EntryDate: "2025-02-20"},
	}
}

// TestQueryTrainingList_Unfiltered verifies insertion order is preserved
// when no filter or sort is requested.
func TestQueryTrainingList_Unfiltered(t *testing.T) {
	result, err := QueryTrainingList(context.Background(),
		TrainingListQuery{Page: 1, PerPage: 20}, listDeps(sampleTrainings()...))
	if err != nil {
		t.Fatalf("QueryTrainingList: %v", err)
	}
	if len(result.Trainings) != 3 {
		t.Fatalf("got %d trainings, want 3", len(result.Trainings))
	}
	for i, wantID := range []string{"t1", "t2", "t3"} {
		if result.Trainings[i].ID != wantID {
			t.Errorf("Trainings[%d].ID = %s, want %s", i, result.Trainings[i].ID, wantID)
		}
	}
	if result.PageInfo.Total != 3 {
		t.Errorf("PageInfo.Total = %d, want 3", result.PageInfo.Total)
	}
}

// TestQueryTrainingList_Filters verifies exact-match filters.
func TestQueryTrainingList_Filters(t *testing.T) {
	tests := []struct {
		name    string
		query   TrainingListQuery
		wantIDs []string
	}{
		{"byPeriod", TrainingListQuery{Period: domain.PeriodQuarter}, []string{"t1", "t3"}},
		{"byType", TrainingListQuery{Type: domain.TypeOnSite}, []string{"t2"}},
		{"byProviderType", TrainingListQuery{ProviderType: domain.ProviderExternal}, []string{"t1", "t3"}},
		{"byDepartment", TrainingListQuery{Department: "Sprzedaż"}, []string{"t3"}},
		{"combined", TrainingListQuery{Period: domain.PeriodQuarter, ProviderType: domain.ProviderExternal, Department: "Finanse"}, []string{"t1"}},
		{"noMatch", TrainingListQuery{Department: "Zarząd"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Page = 1
			tt.query.PerPage = 20
			result, err := QueryTrainingList(context.Background(), tt.query, listDeps(sampleTrainings()...))
			if err != nil {
				t.Fatalf("QueryTrainingList: %v", err)
			}
			if len(result.Trainings) != len(tt.wantIDs) {
				t.Fatalf("got %d trainings, want %d", len(result.Trainings), len(tt.wantIDs))
			}
			for i, wantID := range tt.wantIDs {
				if result.Trainings[i].ID != wantID {
					t.Errorf("Trainings[%d].ID = %s, want %s", i, result.Trainings[i].ID, wantID)
				}
			}
		})
	}
}

// TestQueryTrainingList_Search verifies case-insensitive substring search
// across name, provider, category, and department.
func TestQueryTrainingList_Search(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"name", "excel", []string{"t1"}},
		{"provider", "salespro", []string{"t3"}},
		{"category", "compliance", []string{"t2"}},
		{"department", "finanse", []string{"t1"}},
		{"caseInsensitive", "EXCEL", []string{"t1"}},
		{"noMatch", "kubernetes", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := TrainingListQuery{Search: tt.search, Page: 1, PerPage: 20}
			result, err := QueryTrainingList(context.Background(), query, listDeps(sampleTrainings()...))
			if err != nil {
				t.Fatalf("QueryTrainingList: %v", err)
			}
			if len(result.Trainings) != len(tt.wantIDs) {
				t.Fatalf("got %d trainings, want %d", len(result.Trainings), len(tt.wantIDs))
			}
			for i, wantID := range tt.wantIDs {
				if result.Trainings[i].ID != wantID {
					t.Errorf("Trainings[%d].ID = %s, want %s", i, result.Trainings[i].ID, wantID)
				}
			}
		})
	}
}

// TestQueryTrainingList_Sort verifies column sorting in both directions.
func TestQueryTrainingList_Sort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		dir     string
		wantIDs []string
	}{
		{"nameAsc", "name", "asc", []string{"t2", "t1", "t3"}},
		{"nameDesc", "name", "desc", []string{"t3", "t1", "t2"}},
		{"totalCostAsc", "total_cost", "asc", []string{"t2", "t1", "t3"}},
		{"totalCostDesc", "total_cost", "desc", []string{"t3", "t1", "t2"}},
		{"entryDateAsc", "entry_date", "asc", []string{"t2", "t3", "t1"}},
		{"unknownColumnKeepsOrder", "password", "asc", []string{"t1", "t2", "t3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := TrainingListQuery{Sort: tt.sort, Dir: tt.dir, Page: 1, PerPage: 20}
			result, err := QueryTrainingList(context.Background(), query, listDeps(sampleTrainings()...))
			if err != nil {
				t.Fatalf("QueryTrainingList: %v", err)
			}
			for i, wantID := range tt.wantIDs {
				if result.Trainings[i].ID != wantID {
					t.Errorf("Trainings[%d].ID = %s, want %s", i, result.Trainings[i].ID, wantID)
				}
			}
		})
	}
}

// TestQueryTrainingList_Pagination verifies page windows over the filtered set.
func TestQueryTrainingList_Pagination(t *testing.T) {
	var many []domain.Training
	for i := 0; i < 25; i++ {
		many = append(many, domain.Training{ID: string(rune('a' + i))})
	}
	deps := listDeps(many...)

	result, err := QueryTrainingList(context.Background(), TrainingListQuery{Page: 2, PerPage: 10}, deps)
	if err != nil {
		t.Fatalf("QueryTrainingList: %v", err)
	}
	if len(result.Trainings) != 10 {
		t.Errorf("page 2 size = %d, want 10", len(result.Trainings))
	}
	if result.Trainings[0].ID != "k" {
		t.Errorf("page 2 first ID = %s, want k", result.Trainings[0].ID)
	}
	if result.PageInfo.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.PageInfo.TotalPages)
	}

	result, err = QueryTrainingList(context.Background(), TrainingListQuery{Page: 3, PerPage: 10}, deps)
	if err != nil {
		t.Fatalf("QueryTrainingList: %v", err)
	}
	if len(result.Trainings) != 5 {
		t.Errorf("last page size = %d, want 5", len(result.Trainings))
	}
}

// TestQueryTrainingList_StoreError verifies the error is propagated.
func TestQueryTrainingList_StoreError(t *testing.T) {
	deps := TrainingListDeps{TrainingStore: &mockStatsStore{err: errors.New("boom")}}
	if _, err := QueryTrainingList(context.Background(), TrainingListQuery{}, deps); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
