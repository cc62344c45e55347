package services

import (
	"context"
	"strings"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/infrastructure/observability"
	"github.com/carebridge/medtour-backend/internal/mapping"
	"github.com/carebridge/medtour-backend/internal/resolver"
	"github.com/carebridge/medtour-backend/internal/search"
	apperrors "github.com/carebridge/medtour-backend/pkg/errors"
)

const (
	// DefaultPageSize applies when the caller sends no page size.
	DefaultPageSize = 20
	// MaxPageSize bounds the page size a caller may request.
	MaxPageSize = 50

	// scanWindow bounds how many root records one filtered request may pull
	// for in-memory faceting; the directory is small enough that this covers
	// the full catalogue.
	scanWindow = 500

	// facetResolveLimit bounds facet-text pre-resolution queries.
	facetResolveLimit = 200
)

// FacetParam carries one facet's direct-id selection and/or free-text filter.
type FacetParam struct {
	ID   string
	Text string
}

// DirectoryParams are the root query parameters of a directory request.
type DirectoryParams struct {
	Page     int
	PageSize int

	// Query is the global free-text search driving relevance ranking.
	Query string

	Branch        FacetParam
	City          FacetParam
	Doctor        FacetParam
	Specialty     FacetParam
	Department    FacetParam
	Treatment     FacetParam
	Accreditation FacetParam
}

// HospitalPage is one page of hospitals with branch data attached.
type HospitalPage struct {
	Items    []entities.Hospital `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// BranchPage is one page of enriched branches.
type BranchPage struct {
	Items    []entities.Branch `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// DoctorPage is one page of the flattened doctors view.
type DoctorPage struct {
	Items    []search.DoctorResult `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

// TreatmentPage is one page of the flattened treatments view.
type TreatmentPage struct {
	Items    []search.TreatmentResult `json:"items"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"pageSize"`
}

// DirectoryQueryService answers the read-only directory queries: it fetches
// root records, runs enrichment, applies facet filters and ranking, and
// shapes paged responses. Only a root-fetch failure is terminal; reference
// resolution failures degrade to stubs inside the enricher.
type DirectoryQueryService struct {
	store    providers.ContentStore
	enricher *resolver.Enricher
	engine   *search.Engine
}

// NewDirectoryQueryService creates a new directory query service.
func NewDirectoryQueryService(store providers.ContentStore) *DirectoryQueryService {
	return &DirectoryQueryService{
		store:    store,
		enricher: resolver.NewEnricher(store),
		engine:   search.NewEngine(),
	}
}

// WithMetrics attaches meter instruments to the enrichment fan-out.
func (s *DirectoryQueryService) WithMetrics(metrics *observability.Metrics) *DirectoryQueryService {
	s.enricher.WithMetrics(metrics)
	return s
}

// Branches returns one page of enriched branches.
func (s *DirectoryQueryService) Branches(ctx context.Context, params DirectoryParams) (*BranchPage, error) {
	page, pageSize, err := normalizePaging(params)
	if err != nil {
		return nil, err
	}

	filters, empty, err := s.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}
	if empty {
		return &BranchPage{Items: []entities.Branch{}, Total: 0, Page: page, PageSize: pageSize}, nil
	}

	if !filters.Active() {
		recs, total, err := s.store.Query(ctx, providers.ContentQuery{
			Collection:  entities.CollectionBranches,
			Limit:       pageSize,
			Offset:      page * pageSize,
			NewestFirst: true,
		})
		if err != nil {
			return nil, apperrors.NewExternalError("failed to fetch branches", err)
		}
		return &BranchPage{
			Items:    s.enricher.EnrichBranches(ctx, recs),
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		}, nil
	}

	recs, _, err := s.store.Query(ctx, providers.ContentQuery{
		Collection:  entities.CollectionBranches,
		Limit:       scanWindow,
		NewestFirst: true,
	})
	if err != nil {
		return nil, apperrors.NewExternalError("failed to fetch branches", err)
	}

	branches := s.enricher.EnrichBranches(ctx, recs)
	kept := search.FilterBranches(branches, filters)
	ranked := s.engine.Rank(search.BranchCandidates(kept), params.Query)

	items := make([]entities.Branch, 0, pageSize)
	for _, c := range paginate(ranked, page, pageSize) {
		items = append(items, c.Payload.(entities.Branch))
	}
	return &BranchPage{Items: items, Total: len(ranked), Page: page, PageSize: pageSize}, nil
}

// Hospitals returns one page of hospitals with their computed branches.
func (s *DirectoryQueryService) Hospitals(ctx context.Context, params DirectoryParams) (*HospitalPage, error) {
	page, pageSize, err := normalizePaging(params)
	if err != nil {
		return nil, err
	}

	filters, empty, err := s.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}
	if empty {
		return &HospitalPage{Items: []entities.Hospital{}, Total: 0, Page: page, PageSize: pageSize}, nil
	}

	hospitals, storeTotal, err := s.assembleHospitals(ctx, filters, page, pageSize)
	if err != nil {
		return nil, err
	}

	if !filters.Active() {
		return &HospitalPage{Items: hospitals, Total: storeTotal, Page: page, PageSize: pageSize}, nil
	}

	// Hospitals that lost every branch to filtering no longer match.
	matching := make([]entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if len(h.Branches) > 0 {
			matching = append(matching, h)
		}
	}
	ranked := s.engine.Rank(search.HospitalCandidates(matching), params.Query)

	items := make([]entities.Hospital, 0, pageSize)
	for _, c := range paginate(ranked, page, pageSize) {
		items = append(items, c.Payload.(entities.Hospital))
	}
	return &HospitalPage{Items: items, Total: len(ranked), Page: page, PageSize: pageSize}, nil
}

// Doctors returns one page of the flattened doctors view.
func (s *DirectoryQueryService) Doctors(ctx context.Context, params DirectoryParams) (*DoctorPage, error) {
	page, pageSize, err := normalizePaging(params)
	if err != nil {
		return nil, err
	}

	filters, empty, err := s.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}
	if empty {
		return &DoctorPage{Items: []search.DoctorResult{}, Total: 0, Page: page, PageSize: pageSize}, nil
	}

	hospitals, _, err := s.assembleHospitals(ctx, filters, 0, scanWindow)
	if err != nil {
		return nil, err
	}
	ranked := s.engine.Rank(search.DoctorCandidates(hospitals), params.Query)

	items := make([]search.DoctorResult, 0, pageSize)
	for _, c := range paginate(ranked, page, pageSize) {
		items = append(items, c.Payload.(search.DoctorResult))
	}
	return &DoctorPage{Items: items, Total: len(ranked), Page: page, PageSize: pageSize}, nil
}

// Treatments returns one page of the flattened treatments view.
func (s *DirectoryQueryService) Treatments(ctx context.Context, params DirectoryParams) (*TreatmentPage, error) {
	page, pageSize, err := normalizePaging(params)
	if err != nil {
		return nil, err
	}

	filters, empty, err := s.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}
	if empty {
		return &TreatmentPage{Items: []search.TreatmentResult{}, Total: 0, Page: page, PageSize: pageSize}, nil
	}

	hospitals, _, err := s.assembleHospitals(ctx, filters, 0, scanWindow)
	if err != nil {
		return nil, err
	}
	ranked := s.engine.Rank(search.TreatmentCandidates(hospitals), params.Query)

	items := make([]search.TreatmentResult, 0, pageSize)
	for _, c := range paginate(ranked, page, pageSize) {
		items = append(items, c.Payload.(search.TreatmentResult))
	}
	return &TreatmentPage{Items: items, Total: len(ranked), Page: page, PageSize: pageSize}, nil
}

// assembleHospitals fetches hospital and branch records and builds the
// enriched, branch-filtered hospital graph. Without filters the hospital
// fetch is store-paginated and the returned total is the store total.
func (s *DirectoryQueryService) assembleHospitals(ctx context.Context, filters search.Filters, page, pageSize int) ([]entities.Hospital, int, error) {
	hospitalQuery := providers.ContentQuery{
		Collection:  entities.CollectionHospitals,
		NewestFirst: true,
	}
	if filters.Active() {
		hospitalQuery.Limit = scanWindow
	} else {
		hospitalQuery.Limit = pageSize
		hospitalQuery.Offset = page * pageSize
	}

	hospitalRecs, total, err := s.store.Query(ctx, hospitalQuery)
	if err != nil {
		return nil, 0, apperrors.NewExternalError("failed to fetch hospitals", err)
	}

	branchRecs, _, err := s.store.Query(ctx, providers.ContentQuery{
		Collection:  entities.CollectionBranches,
		Limit:       scanWindow,
		NewestFirst: true,
	})
	if err != nil {
		return nil, 0, apperrors.NewExternalError("failed to fetch branches", err)
	}

	var keep func(entities.Branch) bool
	if filters.Active() {
		keep = func(b entities.Branch) bool { return search.MatchBranch(b, filters) }
	}
	hospitals := s.enricher.EnrichHospitalsFiltered(ctx, hospitalRecs, branchRecs, keep)
	return hospitals, total, nil
}

// buildFilters converts request params into engine filters. Facet text with
// no direct id is pre-resolved against the content store; a facet that
// resolves to zero matching ids short-circuits the whole request to an empty
// page without a root fetch.
func (s *DirectoryQueryService) buildFilters(ctx context.Context, params DirectoryParams) (search.Filters, bool, error) {
	filters := search.Filters{Query: strings.TrimSpace(params.Query)}

	specs := []struct {
		param      FacetParam
		collection entities.Collection
		textFields []string
		target     *search.Facet
	}{
		{params.Branch, entities.CollectionBranches, []string{"name"}, &filters.Branch},
		{params.City, entities.CollectionCities, []string{"name"}, &filters.City},
		{params.Doctor, entities.CollectionDoctors, []string{"name"}, &filters.Doctor},
		{params.Specialty, entities.CollectionSpecialists, []string{"name"}, &filters.Specialty},
		{params.Department, entities.CollectionDepartments, []string{"name"}, &filters.Department},
		{params.Treatment, entities.CollectionTreatments, []string{"name"}, &filters.Treatment},
		// Accreditation records keep their display name under title in parts
		// of the source data, so text resolves against both fields.
		{params.Accreditation, entities.CollectionAccreditations, []string{"name", "title"}, &filters.Accreditation},
	}

	for _, spec := range specs {
		if id := strings.TrimSpace(spec.param.ID); id != "" {
			*spec.target = search.Facet{IDs: []string{id}}
			continue
		}
		text := strings.TrimSpace(spec.param.Text)
		if text == "" {
			continue
		}

		seen := make(map[string]struct{})
		var ids []string
		for _, field := range spec.textFields {
			recs, _, err := s.store.Query(ctx, providers.ContentQuery{
				Collection: spec.collection,
				TextField:  field,
				Text:       text,
				Limit:      facetResolveLimit,
			})
			if err != nil {
				return search.Filters{}, false, apperrors.NewExternalError("failed to resolve facet filter", err)
			}
			for _, rec := range recs {
				id := mapping.RecordID(rec)
				if id == "" {
					continue
				}
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return search.Filters{}, true, nil
		}
		*spec.target = search.Facet{IDs: ids, Text: text}
	}

	return filters, false, nil
}

func normalizePaging(params DirectoryParams) (int, int, error) {
	if params.Page < 0 {
		return 0, 0, apperrors.NewValidationError("page must be >= 0")
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return params.Page, pageSize, nil
}

func paginate(candidates []search.Candidate, page, pageSize int) []search.Candidate {
	start := page * pageSize
	if start >= len(candidates) {
		return nil
	}
	end := start + pageSize
	if end > len(candidates) {
		end = len(candidates)
	}
	return candidates[start:end]
}
