package mapping

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// Rich-text documents arrive either as a plain string or as a tree: a list of
// block nodes, each carrying an optional list of inline nodes. Both renderers
// degrade to best-effort string coercion instead of failing; partial content
// beats no content on a directory page.

// PlainText flattens a rich-text document to plain text. Blocks are separated
// by newlines; inline nodes are concatenated recursively.
func PlainText(doc any) string {
	switch d := doc.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(d)
	}

	blocks, ok := documentBlocks(doc)
	if !ok {
		return degrade(doc, "plain text")
	}

	var parts []string
	for _, block := range blocks {
		if text := strings.TrimSpace(inlineText(block)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// HTML renders a rich-text document to simple HTML. Unrecognized block types
// fall back to their plain text wrapped in a paragraph.
func HTML(doc any) string {
	switch d := doc.(type) {
	case nil:
		return ""
	case string:
		trimmed := strings.TrimSpace(d)
		if trimmed == "" {
			return ""
		}
		return "<p>" + html.EscapeString(trimmed) + "</p>"
	}

	blocks, ok := documentBlocks(doc)
	if !ok {
		coerced := degrade(doc, "html")
		if coerced == "" {
			return ""
		}
		return "<p>" + html.EscapeString(coerced) + "</p>"
	}

	var sb strings.Builder
	for _, block := range blocks {
		renderBlock(&sb, block)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, block any) {
	node, ok := asMap(block)
	if !ok {
		if text := strings.TrimSpace(inlineText(block)); text != "" {
			sb.WriteString("<p>" + html.EscapeString(text) + "</p>")
		}
		return
	}

	switch blockType(node) {
	case "paragraph", "p":
		sb.WriteString("<p>" + html.EscapeString(inlineText(block)) + "</p>")
	case "heading-1", "h1":
		sb.WriteString("<h1>" + html.EscapeString(inlineText(block)) + "</h1>")
	case "heading-2", "h2":
		sb.WriteString("<h2>" + html.EscapeString(inlineText(block)) + "</h2>")
	case "heading-3", "h3":
		sb.WriteString("<h3>" + html.EscapeString(inlineText(block)) + "</h3>")
	case "unordered-list", "bulleted-list", "ul":
		renderList(sb, node, "ul")
	case "ordered-list", "numbered-list", "ol":
		renderList(sb, node, "ol")
	default:
		if text := strings.TrimSpace(inlineText(block)); text != "" {
			sb.WriteString("<p>" + html.EscapeString(text) + "</p>")
		}
	}
}

func renderList(sb *strings.Builder, node map[string]any, tag string) {
	sb.WriteString("<" + tag + ">")
	for _, item := range childNodes(node) {
		sb.WriteString("<li>" + html.EscapeString(strings.TrimSpace(inlineText(item))) + "</li>")
	}
	sb.WriteString("</" + tag + ">")
}

// inlineText concatenates all text reachable under a node.
func inlineText(node any) string {
	switch n := node.(type) {
	case nil:
		return ""
	case string:
		return n
	case []any:
		var sb strings.Builder
		for _, child := range n {
			sb.WriteString(inlineText(child))
		}
		return sb.String()
	}

	m, ok := asMap(node)
	if !ok {
		return cast.ToString(node)
	}
	if text, ok := m["text"].(string); ok {
		return text
	}
	if value, ok := m["value"].(string); ok {
		return value
	}
	var sb strings.Builder
	for _, child := range childNodes(m) {
		sb.WriteString(inlineText(child))
	}
	return sb.String()
}

// documentBlocks extracts the block-node list from a document tree. The tree
// is either the list itself or an object wrapping it under content/blocks.
func documentBlocks(doc any) ([]any, bool) {
	switch d := doc.(type) {
	case []any:
		return d, true
	}
	if m, ok := asMap(doc); ok {
		for _, key := range []string{"content", "blocks", "children"} {
			if blocks, ok := m[key].([]any); ok {
				return blocks, true
			}
		}
	}
	return nil, false
}

func childNodes(node map[string]any) []any {
	for _, key := range []string{"content", "children", "items"} {
		if children, ok := node[key].([]any); ok {
			return children
		}
	}
	return nil
}

func blockType(node map[string]any) string {
	for _, key := range []string{"nodeType", "type", "blockType"} {
		if t, ok := node[key].(string); ok && t != "" {
			return strings.ToLower(t)
		}
	}
	return ""
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case entities.Record:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

func degrade(doc any, target string) string {
	coerced := strings.TrimSpace(cast.ToString(doc))
	log.Warn().
		Str("target", target).
		Str("input_type", fmt.Sprintf("%T", doc)).
		Msg("unparseable rich text, degrading to string coercion")
	return coerced
}
