package resolver

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// GroupBranches assembles the hospital-to-branch association by reverse
// index: a branch carries the hospital id its alias scan discovered, and
// every hospital collects the branches pointing at it. Hospitals keep an
// empty branch list when nothing points at them. Rollups deduplicate
// entities by id across all of a hospital's branches.
func GroupBranches(hospitals []entities.Hospital, branches []entities.Branch) []entities.Hospital {
	byHospital := make(map[string][]entities.Branch)
	for _, b := range branches {
		if b.HospitalID == "" {
			continue
		}
		byHospital[b.HospitalID] = append(byHospital[b.HospitalID], b)
	}

	out := make([]entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		h.Branches = byHospital[h.ID]
		if h.Branches == nil {
			h.Branches = []entities.Branch{}
		}
		for i := range h.Branches {
			if h.Branches[i].HospitalName == "" {
				h.Branches[i].HospitalName = h.Name
			}
		}
		rollup(&h)
		out = append(out, h)
	}
	return out
}

// rollup computes the hospital-level unique entity collections.
func rollup(h *entities.Hospital) {
	seenDoctors := make(map[string]struct{})
	seenTreatments := make(map[string]struct{})
	seenAccreditations := make(map[string]struct{})
	seenSpecializations := make(map[string]struct{})

	h.Doctors = nil
	h.Treatments = nil
	h.Accreditations = nil
	h.Specializations = nil

	for _, b := range h.Branches {
		for _, d := range b.Doctors {
			if _, ok := seenDoctors[d.ID]; ok {
				continue
			}
			seenDoctors[d.ID] = struct{}{}
			h.Doctors = append(h.Doctors, d)
		}
		for _, t := range b.Treatments {
			if _, ok := seenTreatments[t.ID]; ok {
				continue
			}
			seenTreatments[t.ID] = struct{}{}
			h.Treatments = append(h.Treatments, t)
		}
		for _, a := range b.Accreditations {
			if _, ok := seenAccreditations[a.ID]; ok {
				continue
			}
			seenAccreditations[a.ID] = struct{}{}
			h.Accreditations = append(h.Accreditations, a)
		}
		for _, sp := range b.Specializations {
			if _, ok := seenSpecializations[sp.ID]; ok {
				continue
			}
			seenSpecializations[sp.ID] = struct{}{}
			h.Specializations = append(h.Specializations, sp)
		}
	}
}
