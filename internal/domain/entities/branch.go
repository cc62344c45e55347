package entities

// Branch is a physical hospital location. Reference slots hold stubs (id plus
// placeholder name) until enrichment substitutes full copies; each slot owns
// an independent value, never a pointer into a shared graph.
type Branch struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Address         string           `json:"address,omitempty"`
	Cities          []City           `json:"cities"`
	Doctors         []Doctor         `json:"doctors,omitempty"`
	Treatments      []Treatment      `json:"treatments,omitempty"`
	Accreditations  []Accreditation  `json:"accreditations,omitempty"`
	Specializations []Specialization `json:"specializations,omitempty"`

	// HospitalID is discovered by scanning the branch record for any of the
	// legacy hospital-association aliases; empty when no alias matched.
	HospitalID   string `json:"hospitalId,omitempty"`
	HospitalName string `json:"hospitalName,omitempty"`
}

// Hospital is a hospital group. Branches is computed by a reverse-index scan
// over branch records rather than read from a canonical field; the rollup
// slices deduplicate entities across all kept branches by id.
type Hospital struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
	YearEstablished string `json:"yearEstablished,omitempty"`
	LogoURL         string `json:"logoUrl,omitempty"`

	Branches []Branch `json:"branches"`

	Doctors         []Doctor         `json:"doctors,omitempty"`
	Treatments      []Treatment      `json:"treatments,omitempty"`
	Accreditations  []Accreditation  `json:"accreditations,omitempty"`
	Specializations []Specialization `json:"specializations,omitempty"`
}
