package providers

import (
	"context"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// ContentQuery describes one query against a content collection. The store
// only needs to support id-set filters, free-text containment on a single
// named field, pagination and newest-first ordering; all joining happens in
// the enrichment orchestrator.
type ContentQuery struct {
	Collection entities.Collection

	// IDs filters to records whose id is in the set. Callers must not pass an
	// empty, non-nil set; resolvers short-circuit before reaching the store.
	IDs []string

	// TextField/Text filter by case-insensitive containment on one field.
	TextField string
	Text      string

	Limit  int
	Offset int

	// NewestFirst orders by record creation time, descending.
	NewestFirst bool
}

// ContentStore is the single collaborator capability the engine consumes.
// Implementations return the matching page of raw records plus the total
// match count.
type ContentStore interface {
	Query(ctx context.Context, q ContentQuery) ([]entities.Record, int, error)
}
