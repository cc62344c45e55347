package mapping

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// MapTreatment maps a raw treatment record.
func MapTreatment(rec entities.Record) entities.Treatment {
	description := Raw(rec, descriptionAliases...)
	return entities.Treatment{
		ID:              RecordID(rec),
		Name:            ExtractOr(rec, "Unknown Treatment", "Treatment Name", "treatmentName", "treatment_name", "name", "title"),
		Description:     PlainText(description),
		DescriptionHTML: HTML(description),
		MinCost:         Extract(rec, minCostAliases...),
		MaxCost:         Extract(rec, maxCostAliases...),
		Category:        Extract(rec, categoryAliases...),
		Duration:        Extract(rec, durationAliases...),
		ImageURL:        ImageURL(rec, imageAliases...),
	}
}

// MapSpecialty maps a raw specialist record. The specialist's own treatment
// and department references stay as stubs for the enrichment hop.
func MapSpecialty(rec entities.Record) entities.Specialty {
	return entities.Specialty{
		ID:          RecordID(rec),
		Name:        ExtractOr(rec, "Unknown Specialty", "Specialist Name", "specialistName", "Specialty Name", "specialtyName", "name", "title"),
		Treatments:  NormalizeRefs(Raw(rec, treatmentRefAliases...), "Treatment Name", "treatmentName"),
		Departments: NormalizeRefs(Raw(rec, departmentRefAliases...), "Department Name", "departmentName"),
	}
}

// MapDepartment maps a raw department record. Specialist references become
// name-only stubs until the department hop resolves them.
func MapDepartment(rec entities.Record) entities.Department {
	refs := NormalizeRefs(Raw(rec, specialistRefAliases...), "Specialist Name", "specialistName")
	specialists := make([]entities.Specialty, 0, len(refs))
	for _, ref := range refs {
		specialists = append(specialists, entities.Specialty{ID: ref.ID, Name: ref.Name})
	}
	return entities.Department{
		ID:          RecordID(rec),
		Name:        ExtractOr(rec, "Unknown Department", "Department Name", "departmentName", "department_name", "name", "title"),
		Specialists: specialists,
	}
}
