package mapping

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// MapDoctor maps a raw doctor record.
func MapDoctor(rec entities.Record) entities.Doctor {
	about := Raw(rec, aboutAliases...)
	return entities.Doctor{
		ID:            RecordID(rec),
		Name:          ExtractOr(rec, "Unknown Doctor", doctorNameAliases...),
		Specialties:   NormalizeRefs(Raw(rec, specialtyRefAliases...), "Specialty Name", "specialtyName"),
		Qualification: Extract(rec, qualificationAliases...),
		Experience:    Extract(rec, experienceAliases...),
		Designation:   Extract(rec, designationAliases...),
		About:         PlainText(about),
		AboutHTML:     HTML(about),
		ImageURL:      ImageURL(rec, imageAliases...),
	}
}
