package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/infrastructure/observability"
	"github.com/carebridge/medtour-backend/internal/mapping"
)

// Enricher substitutes full entities for the reference stubs on a page of
// root entities. Resolution fans out one batched fetch per referenced
// collection; a failed batch leaves that collection's stubs in place and
// never fails the page.
type Enricher struct {
	store   providers.ContentStore
	metrics *observability.Metrics
}

// NewEnricher creates an enricher over the content store.
func NewEnricher(store providers.ContentStore) *Enricher {
	return &Enricher{store: store}
}

// WithMetrics attaches meter instruments to the resolution fan-out. A nil
// metrics value keeps enrichment unobserved.
func (e *Enricher) WithMetrics(metrics *observability.Metrics) *Enricher {
	e.metrics = metrics
	return e
}

// resolved is the fan-in of one enrichment pass.
type resolved struct {
	hospitals      map[string]entities.Hospital
	doctors        map[string]entities.Doctor
	specialists    map[string]entities.Specialty
	departments    map[string]entities.Department
	treatments     map[string]entities.Treatment
	accreditations map[string]entities.Accreditation
	cities         map[string]entities.City
}

// EnrichBranches maps raw branch records and enriches them in place.
func (e *Enricher) EnrichBranches(ctx context.Context, recs []entities.Record) []entities.Branch {
	branches := make([]entities.Branch, 0, len(recs))
	for _, rec := range recs {
		branches = append(branches, mapping.MapBranch(rec))
	}
	return e.enrich(ctx, branches)
}

// EnrichHospitals maps raw hospital records, enriches the given branch
// records, and assembles the hospital-to-branch reverse index with per-
// hospital rollups.
func (e *Enricher) EnrichHospitals(ctx context.Context, hospitalRecs, branchRecs []entities.Record) []entities.Hospital {
	return e.EnrichHospitalsFiltered(ctx, hospitalRecs, branchRecs, nil)
}

// EnrichHospitalsFiltered is EnrichHospitals with a branch predicate applied
// after enrichment but before the reverse index and rollups are built, so
// hospital-level facet filters see only matching branches.
func (e *Enricher) EnrichHospitalsFiltered(ctx context.Context, hospitalRecs, branchRecs []entities.Record, keep func(entities.Branch) bool) []entities.Hospital {
	hospitals := make([]entities.Hospital, 0, len(hospitalRecs))
	for _, rec := range hospitalRecs {
		hospitals = append(hospitals, mapping.MapHospital(rec))
	}

	branches := e.EnrichBranches(ctx, branchRecs)
	if keep != nil {
		kept := make([]entities.Branch, 0, len(branches))
		for _, b := range branches {
			if keep(b) {
				kept = append(kept, b)
			}
		}
		branches = kept
	}
	return GroupBranches(hospitals, branches)
}

func (e *Enricher) enrich(ctx context.Context, branches []entities.Branch) []entities.Branch {
	sets := collectIDs(branches)
	r := New(e.store)

	var res resolved

	// First wave: all collections are independent, fan out together. Each
	// goroutine owns its own map; the only join is g.Wait.
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { res.hospitals = r.Hospitals(gctx, sets.hospitals.values()); return nil })
	g.Go(func() error { res.doctors = r.Doctors(gctx, sets.doctors.values()); return nil })
	g.Go(func() error { res.specialists = r.Specialists(gctx, sets.specialists.values()); return nil })
	g.Go(func() error { res.departments = r.Departments(gctx, sets.departments.values()); return nil })
	g.Go(func() error { res.treatments = r.Treatments(gctx, sets.treatments.values()); return nil })
	g.Go(func() error { res.accreditations = r.Accreditations(gctx, sets.accreditations.values()); return nil })
	g.Go(func() error { res.cities = r.Cities(gctx, sets.cities.values()); return nil })
	_ = g.Wait()
	observability.RecordResolveMetric(ctx, e.metrics, "first-order", time.Since(start))

	// Second wave: departments reference specialists, and specialists
	// reference treatments and departments. The schema stops there, so the
	// hop is exactly one deep; anything the hop pulls in keeps bare refs.
	start = time.Now()
	e.resolveSecondOrder(ctx, r, &res)
	observability.RecordResolveMetric(ctx, e.metrics, "second-order", time.Since(start))

	for i := range branches {
		substituteBranch(&branches[i], &res)
	}
	return branches
}

func (e *Enricher) resolveSecondOrder(ctx context.Context, r *Resolver, res *resolved) {
	specialistIDs := make(idSet)
	treatmentIDs := make(idSet)
	departmentIDs := make(idSet)

	for _, dept := range res.departments {
		for _, sp := range dept.Specialists {
			if _, ok := res.specialists[sp.ID]; !ok {
				specialistIDs.add(sp.ID)
			}
		}
	}
	for _, sp := range res.specialists {
		for _, ref := range sp.Treatments {
			if _, ok := res.treatments[ref.ID]; !ok {
				treatmentIDs.add(ref.ID)
			}
		}
		for _, ref := range sp.Departments {
			if _, ok := res.departments[ref.ID]; !ok {
				departmentIDs.add(ref.ID)
			}
		}
	}

	var (
		specialists map[string]entities.Specialty
		treatments  map[string]entities.Treatment
		departments map[string]entities.Department
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { specialists = r.Specialists(gctx, specialistIDs.values()); return nil })
	g.Go(func() error { treatments = r.Treatments(gctx, treatmentIDs.values()); return nil })
	g.Go(func() error { departments = r.Departments(gctx, departmentIDs.values()); return nil })
	_ = g.Wait()

	for id, sp := range specialists {
		res.specialists[id] = sp
	}
	for id, t := range treatments {
		res.treatments[id] = t
	}
	for id, d := range departments {
		res.departments[id] = d
	}
}

type idSet map[string]struct{}

func (s idSet) add(ids ...string) {
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
}

func (s idSet) values() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

type idSets struct {
	hospitals      idSet
	doctors        idSet
	specialists    idSet
	departments    idSet
	treatments     idSet
	accreditations idSet
	cities         idSet
}

// collectIDs walks every branch once and gathers the union of referenced ids
// per collection. Specialization entries are routed by their discriminator
// flags: treatment-flagged ids join the treatment set, department-flagged
// ids the department set, the remainder the specialist set.
func collectIDs(branches []entities.Branch) idSets {
	sets := idSets{
		hospitals:      make(idSet),
		doctors:        make(idSet),
		specialists:    make(idSet),
		departments:    make(idSet),
		treatments:     make(idSet),
		accreditations: make(idSet),
		cities:         make(idSet),
	}

	for _, b := range branches {
		sets.hospitals.add(b.HospitalID)
		for _, c := range b.Cities {
			sets.cities.add(c.ID)
		}
		for _, d := range b.Doctors {
			sets.doctors.add(d.ID)
		}
		for _, t := range b.Treatments {
			sets.treatments.add(t.ID)
		}
		for _, a := range b.Accreditations {
			sets.accreditations.add(a.ID)
		}
		for _, sp := range b.Specializations {
			switch {
			case sp.IsTreatment:
				sets.treatments.add(sp.ID)
			case sp.IsDepartment:
				sets.departments.add(sp.ID)
			default:
				sets.specialists.add(sp.ID)
			}
		}
	}
	return sets
}

// substituteBranch replaces every reference stub whose id resolved with an
// independent copy of the full entity, falling back to the stub otherwise.
func substituteBranch(b *entities.Branch, res *resolved) {
	for i, stub := range b.Cities {
		if city, ok := res.cities[stub.ID]; ok {
			b.Cities[i] = city
			continue
		}
		if stub.Name != entities.PlaceholderName {
			// Unresolved but named stub: still run the geo heuristics so
			// downstream city facets see a state.
			stub.State = mapping.InferState(stub.Name)
			b.Cities[i] = mapping.NormalizeCity(stub)
		}
	}
	if len(b.Cities) == 0 {
		b.Cities = []entities.City{{
			ID:      uuid.NewString(),
			Name:    "Unknown City",
			State:   mapping.UnknownState,
			Country: mapping.UnknownCountry,
		}}
	}

	for i, stub := range b.Doctors {
		if doctor, ok := res.doctors[stub.ID]; ok {
			b.Doctors[i] = doctor
		}
	}
	for i, stub := range b.Treatments {
		if treatment, ok := res.treatments[stub.ID]; ok {
			b.Treatments[i] = treatment
		}
	}
	for i, stub := range b.Accreditations {
		if acc, ok := res.accreditations[stub.ID]; ok {
			b.Accreditations[i] = acc
		}
	}

	for i, sp := range b.Specializations {
		switch {
		case sp.IsTreatment:
			if t, ok := res.treatments[sp.ID]; ok {
				sp.Name = t.Name + " (Treatment)"
			}
		case sp.IsDepartment:
			if d, ok := res.departments[sp.ID]; ok {
				sp.Name = d.Name + " (Department)"
			}
		default:
			if s, ok := res.specialists[sp.ID]; ok {
				sp.Name = s.Name
				sp.Treatments = substituteTreatmentRefs(s.Treatments, res)
				sp.Departments = substituteDepartmentRefs(s.Departments, res)
			}
		}
		b.Specializations[i] = sp
	}

	if h, ok := res.hospitals[b.HospitalID]; ok {
		b.HospitalName = h.Name
	}
}

func substituteTreatmentRefs(refs []entities.Ref, res *resolved) []entities.Ref {
	out := make([]entities.Ref, len(refs))
	copy(out, refs)
	for i, ref := range out {
		if t, ok := res.treatments[ref.ID]; ok {
			out[i].Name = t.Name
		}
	}
	return out
}

func substituteDepartmentRefs(refs []entities.Ref, res *resolved) []entities.Ref {
	out := make([]entities.Ref, len(refs))
	copy(out, refs)
	for i, ref := range out {
		if d, ok := res.departments[ref.ID]; ok {
			out[i].Name = d.Name
		}
	}
	return out
}
