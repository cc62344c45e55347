package mapping

import (
	"strings"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// NormalizeRefs converts a raw reference value into a uniform list of
// reference stubs. The value may be absent, a single item, or an array of
// items; items may be bare id strings or embedded objects. Falsy entries are
// dropped.
//
// A bare string becomes {id, "ID Reference"}: the placeholder signals a
// reference awaiting enrichment, while "Unknown" names are reserved for
// entities missing upstream. An object with a name but no id is dropped,
// since a name without an addressable id cannot be resolved or filtered
// downstream. Order is preserved and duplicates are kept; deduplication
// belongs to enrichment, not normalization.
func NormalizeRefs(value any, nameKeys ...string) []entities.Ref {
	if value == nil {
		return nil
	}

	items, ok := value.([]any)
	if !ok {
		items = []any{value}
	}

	var refs []entities.Ref
	for _, item := range items {
		if ref, ok := normalizeRef(item, nameKeys); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func normalizeRef(item any, nameKeys []string) (entities.Ref, bool) {
	switch v := item.(type) {
	case nil:
		return entities.Ref{}, false
	case string:
		id := strings.TrimSpace(v)
		if id == "" {
			return entities.Ref{}, false
		}
		return entities.Ref{ID: id, Name: entities.PlaceholderName}, true
	}

	m, ok := asMap(item)
	if !ok {
		return entities.Ref{}, false
	}

	rec := entities.Record(m)
	id := Extract(rec, idAliases...)
	name := Extract(rec, append(append([]string{}, nameKeys...), "name", "title")...)

	if id == "" {
		return entities.Ref{}, false
	}
	if name == "" {
		name = entities.PlaceholderName
	}
	return entities.Ref{ID: id, Name: name, Extra: m}, true
}

// RefIDs returns the ids of a reference list, in order, duplicates included.
func RefIDs(refs []entities.Ref) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.ID != "" {
			ids = append(ids, ref.ID)
		}
	}
	return ids
}
