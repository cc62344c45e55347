package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	tsclient "github.com/carebridge/medtour-backend/internal/infrastructure/clients/typesense"
)

const collectionName = "branches"

// TypesenseAdapter maintains the offline directory index used for instant
// autocomplete on the marketing site. Online faceting and ranking stay in
// the in-process search engine; this index only serves suggestions.
type TypesenseAdapter struct {
	client *tsclient.Client
}

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the branches collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "hospital_name", Type: "string", Optional: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "state", Type: "string", Facet: pointer.True()},
			{Name: "specializations", Type: "string[]", Optional: pointer.True()},
			{Name: "doctors", Type: "string[]", Optional: pointer.True()},
			{Name: "treatments", Type: "string[]", Optional: pointer.True()},
			{Name: "indexed_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("indexed_at"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// IndexBranch upserts one enriched branch as a flat document.
func (a *TypesenseAdapter) IndexBranch(ctx context.Context, branch entities.Branch) error {
	city, state := "", ""
	if len(branch.Cities) > 0 {
		city = branch.Cities[0].Name
		state = branch.Cities[0].State
	}

	specializations := make([]string, 0, len(branch.Specializations))
	for _, sp := range branch.Specializations {
		specializations = append(specializations, sp.Name)
	}
	doctors := make([]string, 0, len(branch.Doctors))
	for _, d := range branch.Doctors {
		doctors = append(doctors, d.Name)
	}
	treatments := make([]string, 0, len(branch.Treatments))
	for _, t := range branch.Treatments {
		treatments = append(treatments, t.Name)
	}

	document := map[string]interface{}{
		"id":              branch.ID,
		"name":            branch.Name,
		"hospital_name":   branch.HospitalName,
		"city":            city,
		"state":           state,
		"specializations": specializations,
		"doctors":         doctors,
		"treatments":      treatments,
		"indexed_at":      time.Now().Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index branch %s: %w", branch.ID, err)
	}
	return nil
}

// Delete removes a branch from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete branch from index: %w", err)
	}
	return nil
}
