package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carebridge/medtour-backend/internal/mapping"
)

func TestPlainText_String(t *testing.T) {
	assert.Equal(t, "Plain description.", mapping.PlainText("  Plain description.  "))
	assert.Equal(t, "", mapping.PlainText(nil))
	assert.Equal(t, "", mapping.PlainText(""))
}

func TestPlainText_BlockTree(t *testing.T) {
	doc := map[string]any{
		"content": []any{
			map[string]any{
				"nodeType": "paragraph",
				"content": []any{
					map[string]any{"text": "World-class cardiac care"},
					map[string]any{"text": " since 1991."},
				},
			},
			map[string]any{
				"nodeType": "paragraph",
				"content": []any{
					map[string]any{"text": "Second paragraph."},
				},
			},
		},
	}

	assert.Equal(t, "World-class cardiac care since 1991.\nSecond paragraph.", mapping.PlainText(doc))
}

func TestPlainText_BareBlockList(t *testing.T) {
	doc := []any{
		map[string]any{"type": "h1", "content": []any{map[string]any{"text": "About"}}},
		map[string]any{"type": "p", "content": []any{map[string]any{"text": "Details"}}},
	}

	assert.Equal(t, "About\nDetails", mapping.PlainText(doc))
}

func TestPlainText_DegradesUnparseableInput(t *testing.T) {
	assert.Equal(t, "1250", mapping.PlainText(1250))
}

func TestHTML_String(t *testing.T) {
	assert.Equal(t, "<p>A &amp; B</p>", mapping.HTML("A & B"))
	assert.Equal(t, "", mapping.HTML(""))
	assert.Equal(t, "", mapping.HTML(nil))
}

func TestHTML_HeadingsAndParagraphs(t *testing.T) {
	doc := []any{
		map[string]any{"nodeType": "heading-2", "content": []any{map[string]any{"text": "Facilities"}}},
		map[string]any{"nodeType": "paragraph", "content": []any{map[string]any{"text": "350 beds"}}},
	}

	assert.Equal(t, "<h2>Facilities</h2><p>350 beds</p>", mapping.HTML(doc))
}

func TestHTML_Lists(t *testing.T) {
	doc := []any{
		map[string]any{
			"nodeType": "unordered-list",
			"content": []any{
				map[string]any{"content": []any{map[string]any{"text": "ICU"}}},
				map[string]any{"content": []any{map[string]any{"text": "MRI"}}},
			},
		},
	}

	assert.Equal(t, "<ul><li>ICU</li><li>MRI</li></ul>", mapping.HTML(doc))
}

func TestHTML_UnknownBlockFallsBackToParagraph(t *testing.T) {
	doc := []any{
		map[string]any{"nodeType": "blockquote", "content": []any{map[string]any{"text": "Quoted"}}},
	}

	assert.Equal(t, "<p>Quoted</p>", mapping.HTML(doc))
}

func TestHTML_EscapesContent(t *testing.T) {
	doc := []any{
		map[string]any{"nodeType": "paragraph", "content": []any{map[string]any{"text": "<script>x</script>"}}},
	}

	assert.Equal(t, "<p>&lt;script&gt;x&lt;/script&gt;</p>", mapping.HTML(doc))
}
