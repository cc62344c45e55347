package mapping

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// MapCity maps a raw city record to a canonical City. When no state field or
// state reference resolves, the city-to-state inference table is consulted
// before the geographic normalizer runs, so the normalizer sees the best
// available state.
func MapCity(rec entities.Record) entities.City {
	name := ExtractOr(rec, "Unknown City", cityNameAliases...)

	state := Extract(rec, stateAliases...)
	if state == "" {
		if refs := NormalizeRefs(Raw(rec, stateAliases...), "State Name", "stateName"); len(refs) > 0 && !refs[0].IsPlaceholder() {
			state = refs[0].Name
		}
	}
	if state == "" {
		state = InferState(name)
	}

	return NormalizeCity(entities.City{
		ID:      RecordID(rec),
		Name:    name,
		State:   state,
		Country: Extract(rec, countryAliases...),
	})
}

// MapAccreditation maps a raw accreditation record.
func MapAccreditation(rec entities.Record) entities.Accreditation {
	return entities.Accreditation{
		ID:       RecordID(rec),
		Title:    ExtractOr(rec, "Unknown Accreditation", accreditationTitleAliases...),
		ImageURL: ImageURL(rec, imageAliases...),
	}
}
