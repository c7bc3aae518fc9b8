package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OutlineEntry is one heading in the final structured result
type OutlineEntry struct {
	// Level is the heading level, 1-5
	Level int

	// Text is the heading text content
	Text string

	// Page is the 1-based page number where the heading appears
	Page int
}

// Label returns the serialized level form, e.g. "H2"
func (e OutlineEntry) Label() string {
	return fmt.Sprintf("H%d", e.Level)
}

// outlineEntryJSON is the wire form of an outline entry
type outlineEntryJSON struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// MarshalJSON serializes the entry with its level as "H<n>"
func (e OutlineEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(outlineEntryJSON{
		Level: e.Label(),
		Text:  e.Text,
		Page:  e.Page,
	})
}

// UnmarshalJSON parses the wire form back into an entry
func (e *OutlineEntry) UnmarshalJSON(data []byte) error {
	var wire outlineEntryJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	level, err := strconv.Atoi(strings.TrimPrefix(wire.Level, "H"))
	if err != nil {
		return fmt.Errorf("invalid outline level %q: %w", wire.Level, err)
	}
	e.Level = level
	e.Text = wire.Text
	e.Page = wire.Page
	return nil
}

// ExtractionResult is the sole externally visible artifact per document
type ExtractionResult struct {
	// Title of the document; may be empty
	Title string `json:"title"`

	// Outline entries in document order. Never nil: an empty outline
	// serializes as [].
	Outline []OutlineEntry `json:"outline"`
}

// NewExtractionResult creates an empty result with the given title
func NewExtractionResult(title string) *ExtractionResult {
	return &ExtractionResult{
		Title:   title,
		Outline: make([]OutlineEntry, 0),
	}
}

// ToJSON serializes the result
func (r *ExtractionResult) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ToJSONIndent serializes the result with indentation
func (r *ExtractionResult) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

// MarkdownTOC returns a markdown-formatted table of contents, one list item
// per entry, indented by level
func (r *ExtractionResult) MarkdownTOC() string {
	if r == nil || len(r.Outline) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range r.Outline {
		indent := strings.Repeat("  ", e.Level-1)
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(e.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// OutlineNode is a nested view of an outline entry
type OutlineNode struct {
	Entry    OutlineEntry
	Children []OutlineNode
}

// Tree returns the outline as a hierarchy. Because the final outline never
// jumps more than one level at a time, every entry nests directly under the
// most recent shallower entry.
func (r *ExtractionResult) Tree() []OutlineNode {
	if r == nil || len(r.Outline) == 0 {
		return nil
	}

	var roots []OutlineNode
	var stack []*OutlineNode

	for _, e := range r.Outline {
		node := OutlineNode{Entry: e}

		for len(stack) > 0 && stack[len(stack)-1].Entry.Level >= e.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
			stack = append(stack, &roots[len(roots)-1])
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, &parent.Children[len(parent.Children)-1])
		}
	}

	return roots
}
