package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/query/services"
	apperrors "github.com/carebridge/medtour-backend/pkg/errors"
)

type fakeStore struct {
	mu      sync.Mutex
	records map[entities.Collection][]entities.Record
	queries int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[entities.Collection][]entities.Record)}
}

func (s *fakeStore) add(col entities.Collection, recs ...entities.Record) {
	s.records[col] = append(s.records[col], recs...)
}

func (s *fakeStore) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries
}

func (s *fakeStore) Query(_ context.Context, q providers.ContentQuery) ([]entities.Record, int, error) {
	s.mu.Lock()
	s.queries++
	s.mu.Unlock()

	all := s.records[q.Collection]

	var out []entities.Record
	if len(q.IDs) > 0 {
		wanted := make(map[string]struct{}, len(q.IDs))
		for _, id := range q.IDs {
			wanted[id] = struct{}{}
		}
		for _, rec := range all {
			if id, _ := rec["id"].(string); id != "" {
				if _, ok := wanted[id]; ok {
					out = append(out, rec)
				}
			}
		}
	} else {
		out = append(out, all...)
	}

	if q.Text != "" {
		var filtered []entities.Record
		for _, rec := range out {
			name, _ := rec[q.TextField].(string)
			if strings.Contains(strings.ToLower(name), strings.ToLower(q.Text)) {
				filtered = append(filtered, rec)
			}
		}
		out = filtered
	}

	total := len(out)
	if q.Offset > 0 {
		if q.Offset >= len(out) {
			out = nil
		} else {
			out = out[q.Offset:]
		}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, total, nil
}

func directoryFixture() *fakeStore {
	store := newFakeStore()
	store.add(entities.CollectionHospitals,
		entities.Record{"id": "h1", "name": "Apex Group"},
		entities.Record{"id": "h2", "name": "Coastal Care"},
	)
	store.add(entities.CollectionBranches,
		entities.Record{
			"id": "b1", "name": "Apex Gurugram", "hospital": "h1",
			"city": []any{"c1"}, "doctors": []any{"d1"}, "treatment": []any{"t1"},
			"accreditation": []any{"a1"},
		},
		entities.Record{
			"id": "b2", "name": "Apex Jaipur", "hospital": "h1",
			"city": []any{"c2"},
		},
		entities.Record{
			"id": "b3", "name": "Coastal Kochi", "hospital": "h2",
			"city": []any{"c3"}, "doctors": []any{"d2"},
		},
	)
	store.add(entities.CollectionCities,
		entities.Record{"id": "c1", "name": "Gurugram"},
		entities.Record{"id": "c2", "name": "Jaipur"},
		entities.Record{"id": "c3", "name": "Kochi"},
	)
	store.add(entities.CollectionDoctors,
		entities.Record{"id": "d1", "name": "Dr. Asha Verma"},
		entities.Record{"id": "d2", "name": "Dr. Nikhil Shah"},
	)
	store.add(entities.CollectionTreatments,
		entities.Record{"id": "t1", "name": "Knee Replacement"},
	)
	// Accreditations keep their display name under title, never name.
	store.add(entities.CollectionAccreditations,
		entities.Record{"id": "a1", "title": "JCI Accredited"},
	)
	return store
}

func TestBranches_NoFiltersUsesStorePagination(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.PageSize)
}

func TestBranches_CityTextFilter(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{
		City: services.FacetParam{Text: "gurugram"},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "b1", page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestBranches_CityIDFilter(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{
		City: services.FacetParam{ID: "c2"},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "b2", page.Items[0].ID)
}

func TestBranches_UnmatchedFacetShortCircuits(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{
		City: services.FacetParam{Text: "atlantis"},
	})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	// Only the facet pre-resolution query ran; no root fetch, no enrichment.
	assert.Equal(t, 1, store.queryCount())
}

func TestBranches_AccreditationTitleOnlyTextFacet(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{
		Accreditation: services.FacetParam{Text: "jci"},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "b1", page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestBranches_QueryRanksByRelevance(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{Query: "apex"})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	// Both are prefix matches; ties break by id.
	assert.Equal(t, "b1", page.Items[0].ID)
	assert.Equal(t, "b2", page.Items[1].ID)
}

func TestBranches_NegativePageRejected(t *testing.T) {
	svc := services.NewDirectoryQueryService(directoryFixture())

	_, err := svc.Branches(context.Background(), services.DirectoryParams{Page: -1})
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestBranches_PageSizeClamped(t *testing.T) {
	svc := services.NewDirectoryQueryService(directoryFixture())

	page, err := svc.Branches(context.Background(), services.DirectoryParams{PageSize: 500})
	require.NoError(t, err)

	assert.Equal(t, services.MaxPageSize, page.PageSize)
}

func TestHospitals_FilterDropsHospitalsWithoutMatchingBranches(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Hospitals(context.Background(), services.DirectoryParams{
		City: services.FacetParam{Text: "kochi"},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "h2", page.Items[0].ID)
	require.Len(t, page.Items[0].Branches, 1)
	assert.Equal(t, "b3", page.Items[0].Branches[0].ID)
}

func TestHospitals_NoFiltersKeepsAllWithBranches(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Hospitals(context.Background(), services.DirectoryParams{})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
}

func TestDoctors_FlattenedViewCarriesAttribution(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Doctors(context.Background(), services.DirectoryParams{Query: "asha"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Dr. Asha Verma", page.Items[0].Name)
	assert.Equal(t, "Apex Group", page.Items[0].HospitalName)
	assert.Equal(t, "Apex Gurugram", page.Items[0].BranchName)
}

func TestTreatments_FlattenedView(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Treatments(context.Background(), services.DirectoryParams{})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Knee Replacement", page.Items[0].Name)
	assert.Equal(t, "Apex Group", page.Items[0].HospitalName)
}

func TestBranches_FilteredPagination(t *testing.T) {
	store := directoryFixture()
	svc := services.NewDirectoryQueryService(store)

	page, err := svc.Branches(context.Background(), services.DirectoryParams{
		Query:    "apex",
		Page:     1,
		PageSize: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "b2", page.Items[0].ID)
}
