package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/mapping"
)

func TestExtract_AliasOrderWins(t *testing.T) {
	rec := entities.Record{
		"Branch Name": "Apex Hospital Jaipur",
		"name":        "should not be used",
	}

	got := mapping.Extract(rec, "Branch Name", "branchName", "name")
	assert.Equal(t, "Apex Hospital Jaipur", got)
}

func TestExtract_FallsThroughToDataWrapper(t *testing.T) {
	rec := entities.Record{
		"data": map[string]any{
			"name": "Wrapped Value",
		},
	}

	assert.Equal(t, "Wrapped Value", mapping.Extract(rec, "name"))
}

func TestExtract_DirectFieldBeatsWrapperForSameAlias(t *testing.T) {
	rec := entities.Record{
		"name": "Direct",
		"data": map[string]any{
			"name": "Wrapped",
		},
	}

	assert.Equal(t, "Direct", mapping.Extract(rec, "name"))
}

func TestExtract_SkipsEmptyValues(t *testing.T) {
	rec := entities.Record{
		"name":  "   ",
		"title": "Fallback Title",
	}

	assert.Equal(t, "Fallback Title", mapping.Extract(rec, "name", "title"))
}

func TestExtract_CoercesAndTrims(t *testing.T) {
	rec := entities.Record{"established": 1987}
	assert.Equal(t, "1987", mapping.Extract(rec, "established"))

	rec = entities.Record{"name": "  Medanta  "}
	assert.Equal(t, "Medanta", mapping.Extract(rec, "name"))
}

func TestExtract_MissingReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", mapping.Extract(entities.Record{}, "name"))
	assert.Equal(t, "", mapping.Extract(nil, "name"))
}

func TestExtractOr_Default(t *testing.T) {
	rec := entities.Record{}
	assert.Equal(t, "Unknown Branch", mapping.ExtractOr(rec, "Unknown Branch", "name"))

	rec = entities.Record{"name": "Fortis"}
	assert.Equal(t, "Fortis", mapping.ExtractOr(rec, "Unknown Branch", "name"))
}

func TestRecordID_Aliases(t *testing.T) {
	assert.Equal(t, "b1", mapping.RecordID(entities.Record{"id": "b1"}))
	assert.Equal(t, "b2", mapping.RecordID(entities.Record{"_id": "b2"}))
	assert.Equal(t, "b3", mapping.RecordID(entities.Record{"uid": "b3"}))
	assert.Equal(t, "", mapping.RecordID(entities.Record{"name": "no id"}))
}

func TestImageURL_Shapes(t *testing.T) {
	bare := entities.Record{"image": "https://cdn.example.com/a.jpg"}
	assert.Equal(t, "https://cdn.example.com/a.jpg", mapping.ImageURL(bare, "image"))

	asset := entities.Record{"image": map[string]any{"url": "https://cdn.example.com/b.jpg"}}
	assert.Equal(t, "https://cdn.example.com/b.jpg", mapping.ImageURL(asset, "image"))

	nested := entities.Record{"image": map[string]any{
		"file": map[string]any{"url": "https://cdn.example.com/c.jpg"},
	}}
	assert.Equal(t, "https://cdn.example.com/c.jpg", mapping.ImageURL(nested, "image"))

	assert.Equal(t, "", mapping.ImageURL(entities.Record{}, "image"))
	assert.Equal(t, "", mapping.ImageURL(entities.Record{"image": 42}, "image"))
}
