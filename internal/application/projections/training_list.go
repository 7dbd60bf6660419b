package projections

import (
	"context"
	"sort"
	"strings"

	"trainbook/internal/application/listutil"
	domain "trainbook/internal/domain/training"
)

// TrainingListQuery carries filter, sort, and pagination parameters for the
// trainings list view.
type TrainingListQuery struct {
	Period       string
	Type         string
	ProviderType string
	Department   string
	Search       string
	Sort         string
	Dir          string
	Page         int
	PerPage      int
}

// TrainingListResult carries the page of trainings plus pagination metadata.
type TrainingListResult struct {
	Trainings []domain.Training `json:"trainings"`
	PageInfo  listutil.PageInfo `json:"pageInfo"`
}

// TrainingListDeps holds dependencies for QueryTrainingList.
type TrainingListDeps struct {
	TrainingStore StatsTrainingStore
}

// QueryTrainingList returns a filtered, sorted, paginated page of trainings.
// Filters are exact matches; Search matches name, provider, category, and
// department case-insensitively. Unfiltered order is insertion order.
// PRE: deps.TrainingStore is non-nil
// POST: result.Trainings holds at most PerPage rows; PageInfo reflects the
// filtered total, not the collection total
func QueryTrainingList(ctx context.Context, query TrainingListQuery, deps TrainingListDeps) (TrainingListResult, error) {
	all, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return TrainingListResult{}, err
	}

	filtered := make([]domain.Training, 0, len(all))
	search := strings.ToLower(query.Search)
	for _, t := range all {
		if query.Period != "" && t.Period != query.Period {
			continue
		}
		if query.Type != "" && t.Type != query.Type {
			continue
		}
		if query.ProviderType != "" && t.ProviderType != query.ProviderType {
			continue
		}
		if query.Department != "" && t.Department != query.Department {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTrainings(filtered, query.Sort, query.Dir)

	info := listutil.NewPageInfo(query.Page, query.PerPage, len(filtered))
	page := listutil.Page(filtered, info)
	if page == nil {
		page = []domain.Training{}
	}
	return TrainingListResult{Trainings: page, PageInfo: info}, nil
}

func matchesSearch(t domain.Training, search string) bool {
	for _, field := range []string{t.Name, t.Provider, t.Category, t.Department} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// sortTrainings orders trainings in place by the named column. An empty or
// unrecognised column keeps insertion order.
func sortTrainings(trainings []domain.Training, column, dir string) {
	if column == "" {
		return
	}
	less := func(a, b domain.Training) bool { return false }
	switch column {
	case "name":
		less = func(a, b domain.Training) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "department":
		less = func(a, b domain.Training) bool { return strings.ToLower(a.Department) < strings.ToLower(b.Department) }
	case "entry_date":
		less = func(a, b domain.Training) bool { return a.EntryDate < b.EntryDate }
	case "start_date":
		less = func(a, b domain.Training) bool { return a.DateRange.StartDate < b.DateRange.StartDate }
	case "total_cost":
		less = func(a, b domain.Training) bool { return a.TotalCost < b.TotalCost }
	default:
		return
	}
	sort.SliceStable(trainings, func(i, j int) bool {
		if dir == "desc" {
			return less(trainings[j], trainings[i])
		}
		return less(trainings[i], trainings[j])
	})
}
