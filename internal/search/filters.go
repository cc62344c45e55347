package search

import (
	"strings"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// Facet is one filterable dimension. An id-selected facet matches by set
// membership; facet text matches by case-insensitive substring on the
// referenced names, whether or not ids resolved alongside it. An inactive
// facet matches everything.
type Facet struct {
	IDs  []string
	Text string
}

// Active reports whether the facet constrains results.
func (f Facet) Active() bool {
	return len(f.IDs) > 0 || strings.TrimSpace(f.Text) != ""
}

func (f Facet) match(ids []string, names []string) bool {
	if !f.Active() {
		return true
	}
	if len(f.IDs) > 0 {
		selected := make(map[string]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			selected[id] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := selected[id]; ok {
				return true
			}
		}
		// A pre-resolved id set can be incomplete when the referenced
		// collection stores its display name under another field; user text
		// still matches against the enriched names below.
	}
	needle := strings.ToLower(strings.TrimSpace(f.Text))
	if needle == "" {
		return false
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	return false
}

// Filters holds every facet of a directory query plus the global free-text
// query used for relevance ranking. All active facets must match (AND).
type Filters struct {
	Branch        Facet
	City          Facet
	Doctor        Facet
	Specialty     Facet
	Department    Facet
	Treatment     Facet
	Accreditation Facet

	Query string
}

// Active reports whether any facet constrains results.
func (f Filters) Active() bool {
	return f.Branch.Active() || f.City.Active() || f.Doctor.Active() ||
		f.Specialty.Active() || f.Department.Active() || f.Treatment.Active() ||
		f.Accreditation.Active() || strings.TrimSpace(f.Query) != ""
}

// MatchBranch applies every active facet against an enriched branch.
func MatchBranch(b entities.Branch, f Filters) bool {
	if !f.Branch.match([]string{b.ID}, []string{b.Name}) {
		return false
	}

	cityIDs := make([]string, 0, len(b.Cities))
	cityNames := make([]string, 0, len(b.Cities)*2)
	for _, c := range b.Cities {
		cityIDs = append(cityIDs, c.ID)
		cityNames = append(cityNames, c.Name, c.State)
	}
	if !f.City.match(cityIDs, cityNames) {
		return false
	}

	doctorIDs := make([]string, 0, len(b.Doctors))
	doctorNames := make([]string, 0, len(b.Doctors))
	for _, d := range b.Doctors {
		doctorIDs = append(doctorIDs, d.ID)
		doctorNames = append(doctorNames, d.Name)
	}
	if !f.Doctor.match(doctorIDs, doctorNames) {
		return false
	}

	var specIDs, specNames []string
	var deptIDs, deptNames []string
	var treatIDs, treatNames []string
	for _, sp := range b.Specializations {
		specIDs = append(specIDs, sp.ID)
		specNames = append(specNames, sp.Name)
		if sp.IsDepartment {
			deptIDs = append(deptIDs, sp.ID)
			deptNames = append(deptNames, sp.Name)
		}
		if sp.IsTreatment {
			treatIDs = append(treatIDs, sp.ID)
			treatNames = append(treatNames, sp.Name)
		}
	}
	for _, t := range b.Treatments {
		treatIDs = append(treatIDs, t.ID)
		treatNames = append(treatNames, t.Name)
	}
	if !f.Specialty.match(specIDs, specNames) {
		return false
	}
	if !f.Department.match(deptIDs, deptNames) {
		return false
	}
	if !f.Treatment.match(treatIDs, treatNames) {
		return false
	}

	accIDs := make([]string, 0, len(b.Accreditations))
	accNames := make([]string, 0, len(b.Accreditations))
	for _, a := range b.Accreditations {
		accIDs = append(accIDs, a.ID)
		accNames = append(accNames, a.Title)
	}
	return f.Accreditation.match(accIDs, accNames)
}

// FilterBranches keeps the branches matching every active facet.
func FilterBranches(branches []entities.Branch, f Filters) []entities.Branch {
	kept := make([]entities.Branch, 0, len(branches))
	for _, b := range branches {
		if MatchBranch(b, f) {
			kept = append(kept, b)
		}
	}
	return kept
}
