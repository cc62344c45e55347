package resolver

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/rs/zerolog/log"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/mapping"
)

// batchSize bounds the id set of a single content-store query.
const batchSize = 100

// Resolver resolves reference ids against the content store, one batched
// fetch per collection instead of one fetch per record. Resolvers are cheap
// and request-scoped; the dataloader in-flight cache must not outlive a
// request.
type Resolver struct {
	hospitals      *dataloader.Loader[string, entities.Hospital]
	doctors        *dataloader.Loader[string, entities.Doctor]
	specialists    *dataloader.Loader[string, entities.Specialty]
	departments    *dataloader.Loader[string, entities.Department]
	treatments     *dataloader.Loader[string, entities.Treatment]
	accreditations *dataloader.Loader[string, entities.Accreditation]
	cities         *dataloader.Loader[string, entities.City]
}

// New creates a request-scoped resolver over the content store.
func New(store providers.ContentStore) *Resolver {
	return &Resolver{
		hospitals:      newLoader(store, entities.CollectionHospitals, mapping.MapHospital),
		doctors:        newLoader(store, entities.CollectionDoctors, mapping.MapDoctor),
		specialists:    newLoader(store, entities.CollectionSpecialists, mapping.MapSpecialty),
		departments:    newLoader(store, entities.CollectionDepartments, mapping.MapDepartment),
		treatments:     newLoader(store, entities.CollectionTreatments, mapping.MapTreatment),
		accreditations: newLoader(store, entities.CollectionAccreditations, mapping.MapAccreditation),
		cities:         newLoader(store, entities.CollectionCities, mapping.MapCity),
	}
}

// Hospitals resolves hospital ids to mapped hospitals.
func (r *Resolver) Hospitals(ctx context.Context, ids []string) map[string]entities.Hospital {
	return resolveAll(ctx, r.hospitals, ids)
}

// Doctors resolves doctor ids to mapped doctors.
func (r *Resolver) Doctors(ctx context.Context, ids []string) map[string]entities.Doctor {
	return resolveAll(ctx, r.doctors, ids)
}

// Specialists resolves specialist ids to mapped specialties.
func (r *Resolver) Specialists(ctx context.Context, ids []string) map[string]entities.Specialty {
	return resolveAll(ctx, r.specialists, ids)
}

// Departments resolves department ids to mapped departments.
func (r *Resolver) Departments(ctx context.Context, ids []string) map[string]entities.Department {
	return resolveAll(ctx, r.departments, ids)
}

// Treatments resolves treatment ids to mapped treatments.
func (r *Resolver) Treatments(ctx context.Context, ids []string) map[string]entities.Treatment {
	return resolveAll(ctx, r.treatments, ids)
}

// Accreditations resolves accreditation ids to mapped accreditations.
func (r *Resolver) Accreditations(ctx context.Context, ids []string) map[string]entities.Accreditation {
	return resolveAll(ctx, r.accreditations, ids)
}

// Cities resolves city ids to mapped, geo-normalized cities.
func (r *Resolver) Cities(ctx context.Context, ids []string) map[string]entities.City {
	return resolveAll(ctx, r.cities, ids)
}

func newLoader[T any](store providers.ContentStore, col entities.Collection, mapFn func(entities.Record) T) *dataloader.Loader[string, T] {
	batch := func(ctx context.Context, keys []string) []*dataloader.Result[T] {
		results := make([]*dataloader.Result[T], len(keys))

		recs, _, err := store.Query(ctx, providers.ContentQuery{
			Collection: col,
			IDs:        keys,
			Limit:      len(keys),
		})
		if err != nil {
			// A failed batch degrades this collection's references to their
			// stub form; it must not abort the other collections.
			log.Warn().
				Str("collection", string(col)).
				Int("id_count", len(keys)).
				Err(err).
				Msg("batched reference fetch failed")
			for i := range keys {
				results[i] = &dataloader.Result[T]{Error: err}
			}
			return results
		}

		byID := make(map[string]entities.Record, len(recs))
		for _, rec := range recs {
			if id := mapping.RecordID(rec); id != "" {
				byID[id] = rec
			}
		}

		for i, key := range keys {
			if rec, ok := byID[key]; ok {
				results[i] = &dataloader.Result[T]{Data: mapFn(rec)}
			} else {
				results[i] = &dataloader.Result[T]{Error: fmt.Errorf("%s %s not found", col, key)}
			}
		}
		return results
	}

	return dataloader.NewBatchedLoader(batch, dataloader.WithBatchCapacity[string, T](batchSize))
}

// resolveAll loads the given ids and returns an id-keyed lookup of the ones
// that resolved. An empty id set returns immediately without touching the
// store: an empty "in" filter is invalid on the content store. Unresolved
// ids are simply absent from the map; callers keep their stubs.
func resolveAll[T any](ctx context.Context, loader *dataloader.Loader[string, T], ids []string) map[string]T {
	out := make(map[string]T)
	if len(ids) == 0 {
		return out
	}

	uniq := uniqueIDs(ids)
	thunks := make([]dataloader.Thunk[T], len(uniq))
	for i, id := range uniq {
		thunks[i] = loader.Load(ctx, id)
	}
	for i, id := range uniq {
		if v, err := thunks[i](); err == nil {
			out[id] = v
		}
	}
	return out
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	return uniq
}
