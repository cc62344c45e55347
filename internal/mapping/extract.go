package mapping

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// Extract resolves a scalar value from a raw record given an ordered list of
// candidate field names. Each candidate is tried against the record directly
// and then against a nested "data" wrapper before the next candidate is
// considered, so alias order is the dominant fallback order. The first
// present, non-empty value is string-coerced and trimmed. Returns "" when no
// candidate matches.
func Extract(rec entities.Record, keys ...string) string {
	v := Raw(rec, keys...)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

// ExtractOr is Extract with a default for missing fields.
func ExtractOr(rec entities.Record, fallback string, keys ...string) string {
	if v := Extract(rec, keys...); v != "" {
		return v
	}
	return fallback
}

// Raw resolves the first present, non-empty value for the candidate keys
// without coercion. Reference and rich-text fields need the raw shape.
func Raw(rec entities.Record, keys ...string) any {
	if rec == nil {
		return nil
	}
	data, _ := asMap(rec["data"])
	for _, key := range keys {
		if v, ok := rec[key]; ok && !isEmptyValue(v) {
			return v
		}
		if data != nil {
			if v, ok := data[key]; ok && !isEmptyValue(v) {
				return v
			}
		}
	}
	return nil
}

// RecordID returns the record's id, tolerating the id aliases used across
// content sources.
func RecordID(rec entities.Record) string {
	return Extract(rec, idAliases...)
}

// ImageURL resolves an image reference field to a URL. Sources store images
// as a bare URL string, an asset object with a url field, or an asset object
// wrapping a file object.
func ImageURL(rec entities.Record, keys ...string) string {
	v := Raw(rec, keys...)
	switch img := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(img)
	case map[string]any:
		if url := Extract(entities.Record(img), "url", "src", "imageUrl", "image_url"); url != "" {
			return url
		}
		if file, ok := img["file"].(map[string]any); ok {
			return Extract(entities.Record(file), "url", "src")
		}
		return ""
	case entities.Record:
		return ImageURL(entities.Record{"image": map[string]any(img)}, "image")
	default:
		return ""
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
