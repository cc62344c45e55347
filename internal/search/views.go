package search

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// View flattening: each view mode turns the enriched hospital graph into a
// type-homogeneous candidate list with owner attribution. Candidates reached
// through multiple containment paths are deduplicated by id, preferring the
// branch-attributed copy over a hospital-attributed one since it carries
// more display context.

// DoctorResult is a doctor candidate with its owning hospital and branch.
type DoctorResult struct {
	entities.Doctor
	HospitalName string `json:"hospitalName,omitempty"`
	BranchName   string `json:"branchName,omitempty"`
}

// TreatmentResult is a treatment candidate with its owning hospital and branch.
type TreatmentResult struct {
	entities.Treatment
	HospitalName string `json:"hospitalName,omitempty"`
	BranchName   string `json:"branchName,omitempty"`
}

// HospitalCandidates flattens hospitals for ranking.
func HospitalCandidates(hospitals []entities.Hospital) []Candidate {
	out := make([]Candidate, 0, len(hospitals))
	for _, h := range hospitals {
		facets := make([]string, 0, len(h.Branches)+len(h.Specializations))
		for _, b := range h.Branches {
			facets = append(facets, b.Name)
		}
		for _, sp := range h.Specializations {
			facets = append(facets, sp.Name)
		}
		out = append(out, Candidate{
			ID:         h.ID,
			Name:       h.Name,
			FacetNames: facets,
			Payload:    h,
		})
	}
	return out
}

// BranchCandidates flattens branches for ranking.
func BranchCandidates(branches []entities.Branch) []Candidate {
	out := make([]Candidate, 0, len(branches))
	for _, b := range branches {
		facets := make([]string, 0, len(b.Specializations)+len(b.Cities)+len(b.Doctors)+len(b.Treatments))
		for _, sp := range b.Specializations {
			facets = append(facets, sp.Name)
		}
		for _, c := range b.Cities {
			facets = append(facets, c.Name)
		}
		for _, d := range b.Doctors {
			facets = append(facets, d.Name)
		}
		for _, t := range b.Treatments {
			facets = append(facets, t.Name)
		}
		out = append(out, Candidate{
			ID:         b.ID,
			Name:       b.Name,
			OwnerName:  b.HospitalName,
			FacetNames: facets,
			Payload:    b,
		})
	}
	return out
}

// DoctorCandidates flattens the doctors view. Branch-attributed copies are
// collected first, then hospital rollup copies fill in any id not yet seen.
func DoctorCandidates(hospitals []entities.Hospital) []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate

	for _, h := range hospitals {
		for _, b := range h.Branches {
			for _, d := range b.Doctors {
				if _, ok := seen[d.ID]; ok {
					continue
				}
				seen[d.ID] = struct{}{}
				out = append(out, doctorCandidate(d, h.Name, b.Name))
			}
		}
	}
	for _, h := range hospitals {
		for _, d := range h.Doctors {
			if _, ok := seen[d.ID]; ok {
				continue
			}
			seen[d.ID] = struct{}{}
			out = append(out, doctorCandidate(d, h.Name, ""))
		}
	}
	return out
}

func doctorCandidate(d entities.Doctor, hospitalName, branchName string) Candidate {
	facets := make([]string, 0, len(d.Specialties)+1)
	for _, sp := range d.Specialties {
		facets = append(facets, sp.Name)
	}
	if branchName != "" {
		facets = append(facets, branchName)
	}
	return Candidate{
		ID:         d.ID,
		Name:       d.Name,
		OwnerName:  hospitalName,
		FacetNames: facets,
		Payload: DoctorResult{
			Doctor:       d,
			HospitalName: hospitalName,
			BranchName:   branchName,
		},
	}
}

// TreatmentCandidates flattens the treatments view with the same
// branch-copy-preferred deduplication as doctors.
func TreatmentCandidates(hospitals []entities.Hospital) []Candidate {
	seen := make(map[string]struct{})
	var out []Candidate

	for _, h := range hospitals {
		for _, b := range h.Branches {
			for _, t := range b.Treatments {
				if _, ok := seen[t.ID]; ok {
					continue
				}
				seen[t.ID] = struct{}{}
				out = append(out, treatmentCandidate(t, h.Name, b.Name))
			}
		}
	}
	for _, h := range hospitals {
		for _, t := range h.Treatments {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}
			out = append(out, treatmentCandidate(t, h.Name, ""))
		}
	}
	return out
}

func treatmentCandidate(t entities.Treatment, hospitalName, branchName string) Candidate {
	facets := []string{t.Category}
	if branchName != "" {
		facets = append(facets, branchName)
	}
	return Candidate{
		ID:         t.ID,
		Name:       t.Name,
		OwnerName:  hospitalName,
		FacetNames: facets,
		Payload: TreatmentResult{
			Treatment:    t,
			HospitalName: hospitalName,
			BranchName:   branchName,
		},
	}
}
