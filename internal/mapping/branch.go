package mapping

import (
	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// MapBranch maps a raw branch record. All reference slots become stubs; the
// derived specialization list is the union of the record's specialty,
// treatment and department references, with discriminator flags recording
// which collection each id resolves against.
func MapBranch(rec entities.Record) entities.Branch {
	cityRefs := NormalizeRefs(Raw(rec, cityRefAliases...), cityNameAliases...)
	doctorRefs := NormalizeRefs(Raw(rec, doctorRefAliases...), doctorNameAliases...)
	treatmentRefs := NormalizeRefs(Raw(rec, treatmentRefAliases...), "Treatment Name", "treatmentName")
	departmentRefs := NormalizeRefs(Raw(rec, departmentRefAliases...), "Department Name", "departmentName")
	specialtyRefs := NormalizeRefs(Raw(rec, specialtyRefAliases...), "Specialty Name", "specialtyName")
	accreditationRefs := NormalizeRefs(Raw(rec, accreditationRefAliases...), accreditationTitleAliases...)

	branch := entities.Branch{
		ID:      RecordID(rec),
		Name:    ExtractOr(rec, "Unknown Branch", branchNameAliases...),
		Address: Extract(rec, addressAliases...),
	}

	branch.Cities = make([]entities.City, 0, len(cityRefs))
	for _, ref := range cityRefs {
		branch.Cities = append(branch.Cities, entities.City{ID: ref.ID, Name: ref.Name})
	}

	branch.Doctors = make([]entities.Doctor, 0, len(doctorRefs))
	for _, ref := range doctorRefs {
		branch.Doctors = append(branch.Doctors, entities.Doctor{ID: ref.ID, Name: ref.Name})
	}

	branch.Treatments = make([]entities.Treatment, 0, len(treatmentRefs))
	for _, ref := range treatmentRefs {
		branch.Treatments = append(branch.Treatments, entities.Treatment{ID: ref.ID, Name: ref.Name})
	}

	branch.Accreditations = make([]entities.Accreditation, 0, len(accreditationRefs))
	for _, ref := range accreditationRefs {
		branch.Accreditations = append(branch.Accreditations, entities.Accreditation{ID: ref.ID, Title: ref.Name})
	}

	branch.Specializations = make([]entities.Specialization, 0, len(specialtyRefs)+len(treatmentRefs)+len(departmentRefs))
	for _, ref := range specialtyRefs {
		branch.Specializations = append(branch.Specializations, entities.Specialization{ID: ref.ID, Name: ref.Name})
	}
	for _, ref := range treatmentRefs {
		branch.Specializations = append(branch.Specializations, entities.Specialization{ID: ref.ID, Name: ref.Name, IsTreatment: true})
	}
	for _, ref := range departmentRefs {
		branch.Specializations = append(branch.Specializations, entities.Specialization{ID: ref.ID, Name: ref.Name, IsDepartment: true})
	}

	branch.HospitalID, branch.HospitalName = hospitalAssociation(rec)

	return branch
}

// hospitalAssociation scans the ordered alias table for a hospital reference.
// The first alias yielding an id wins; disagreeing later aliases are ignored.
func hospitalAssociation(rec entities.Record) (string, string) {
	for _, alias := range HospitalAssociationAliases {
		refs := NormalizeRefs(Raw(rec, alias), hospitalNameAliases...)
		if len(refs) == 0 || refs[0].ID == "" {
			continue
		}
		name := refs[0].Name
		if refs[0].IsPlaceholder() {
			name = ""
		}
		return refs[0].ID, name
	}
	return "", ""
}
