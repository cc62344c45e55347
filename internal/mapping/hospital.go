package mapping

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// MapHospital maps a raw hospital record. Branches are not read from the
// record: no canonical field links a hospital to its branches, so the
// enrichment orchestrator assembles them by a reverse-index scan over branch
// records.
func MapHospital(rec entities.Record) entities.Hospital {
	description := Raw(rec, descriptionAliases...)
	return entities.Hospital{
		ID:              RecordID(rec),
		Name:            ExtractOr(rec, "Unknown Hospital", hospitalNameAliases...),
		Description:     PlainText(description),
		DescriptionHTML: HTML(description),
		YearEstablished: Extract(rec, yearEstablishedAliases...),
		LogoURL:         ImageURL(rec, logoAliases...),
		Branches:        []entities.Branch{},
	}
}
