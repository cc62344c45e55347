package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/mapping"
)

func TestNormalizeRefs_Nil(t *testing.T) {
	assert.Nil(t, mapping.NormalizeRefs(nil))
}

func TestNormalizeRefs_BareStringBecomesPlaceholder(t *testing.T) {
	refs := mapping.NormalizeRefs("doc-1")

	assert.Len(t, refs, 1)
	assert.Equal(t, "doc-1", refs[0].ID)
	assert.Equal(t, entities.PlaceholderName, refs[0].Name)
	assert.True(t, refs[0].IsPlaceholder())
}

func TestNormalizeRefs_SingleItemWrapped(t *testing.T) {
	refs := mapping.NormalizeRefs(map[string]any{"id": "d1", "name": "Cardiology"})

	assert.Len(t, refs, 1)
	assert.Equal(t, "d1", refs[0].ID)
	assert.Equal(t, "Cardiology", refs[0].Name)
}

func TestNormalizeRefs_MixedArray(t *testing.T) {
	refs := mapping.NormalizeRefs([]any{
		"t1",
		map[string]any{"id": "t2", "name": "Hip Replacement"},
		nil,
		"",
		map[string]any{"name": "no id, dropped"},
		map[string]any{"id": "t3"},
	})

	assert.Len(t, refs, 3)
	assert.Equal(t, entities.Ref{ID: "t1", Name: entities.PlaceholderName}, entities.Ref{ID: refs[0].ID, Name: refs[0].Name})
	assert.Equal(t, "Hip Replacement", refs[1].Name)
	assert.Equal(t, entities.PlaceholderName, refs[2].Name)
}

func TestNormalizeRefs_NameKeyPrecedence(t *testing.T) {
	refs := mapping.NormalizeRefs(
		map[string]any{"id": "s1", "Specialty Name": "Oncology", "name": "wrong"},
		"Specialty Name", "specialtyName",
	)

	assert.Len(t, refs, 1)
	assert.Equal(t, "Oncology", refs[0].Name)
}

func TestNormalizeRefs_KeepsExtraFields(t *testing.T) {
	refs := mapping.NormalizeRefs(map[string]any{"id": "s1", "name": "Neurology", "floor": 3})

	assert.Len(t, refs, 1)
	assert.Equal(t, 3, refs[0].Extra["floor"])
}

func TestRefIDs_PreservesOrderAndDuplicates(t *testing.T) {
	refs := []entities.Ref{
		{ID: "a"},
		{ID: "b"},
		{ID: "a"},
		{ID: ""},
	}

	assert.Equal(t, []string{"a", "b", "a"}, mapping.RefIDs(refs))
}
