package entities

// PlaceholderName marks a reference that carries an id but no resolved name
// yet. Enrichment replaces placeholders with the referenced entity's name;
// "Unknown X" defaults are reserved for entities that are genuinely missing
// upstream.
const PlaceholderName = "ID Reference"

// Ref is a normalized reference stub: an id plus the best name the source
// record offered, with any extra raw fields preserved for the mappers.
type Ref struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Extra map[string]any `json:"-"`
}

// IsPlaceholder reports whether the ref still carries the unresolved
// placeholder name.
func (r Ref) IsPlaceholder() bool {
	return r.Name == PlaceholderName
}
