package entities

// Doctor is a practicing doctor attached to one or more branches.
type Doctor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Specialties   []Ref  `json:"specialties,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	Experience    string `json:"experience,omitempty"`
	Designation   string `json:"designation,omitempty"`
	About         string `json:"about,omitempty"`
	AboutHTML     string `json:"aboutHtml,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
}
