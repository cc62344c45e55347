package entities

// City is a canonical location. After normalization State and Country are
// never empty.
type City struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Accreditation is a quality certification attached to a branch.
type Accreditation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl,omitempty"`
}
