package entities

// Treatment is a medical procedure or treatment package offered by a branch.
type Treatment struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
	MinCost         string `json:"minCost,omitempty"`
	MaxCost         string `json:"maxCost,omitempty"`
	Category        string `json:"category,omitempty"`
	Duration        string `json:"duration,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// Specialty is a medical specialty. When resolved through the specialists
// collection it additionally carries the specialist's own treatment and
// department references.
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Treatments  []Ref  `json:"treatments,omitempty"`
	Departments []Ref  `json:"departments,omitempty"`
}

// Department is a clinical department within a branch.
type Department struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Specialists []Specialty `json:"specialists,omitempty"`
}

// Specialization is one entry in a branch's derived specialization list: the
// union of specialty, treatment-tagged and department-tagged references. The
// discriminator flags record which collection the id resolves against.
type Specialization struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsTreatment  bool   `json:"isTreatment,omitempty"`
	IsDepartment bool   `json:"isDepartment,omitempty"`
	Treatments   []Ref  `json:"treatments,omitempty"`
	Departments  []Ref  `json:"departments,omitempty"`
}
