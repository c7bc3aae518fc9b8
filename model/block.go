package model

import "strings"

// BlockType represents the type of a layout block
type BlockType int

const (
	// BlockText is a block of text lines
	BlockText BlockType = iota
	// BlockImage is a non-text block (image, drawing)
	BlockImage
)

// String returns a string representation of the block type
func (bt BlockType) String() string {
	switch bt {
	case BlockText:
		return "text"
	case BlockImage:
		return "image"
	default:
		return "unknown"
	}
}

// Span is a run of text sharing one font size and style within a line.
// Spans are immutable once ingested.
type Span struct {
	// Text content of the span
	Text string

	// Size is the font size in typographic points
	Size float64

	// FontName is the font family name as reported by the ingestion layer
	FontName string

	// Bold is derived at ingestion from the font name or style flags
	Bold bool

	// BBox is the span's bounding box
	BBox BBox
}

// Line is an ordered sequence of spans in reading order within the line
type Line struct {
	Spans []Span
	BBox  BBox
}

// Text concatenates the line's span texts
func (l *Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// Block is a layout-ingestion-reported grouping of lines, roughly a
// paragraph or heading unit
type Block struct {
	Type  BlockType
	BBox  BBox
	Lines []*Line
}

// Text joins the block's line texts with single spaces
func (b *Block) Text() string {
	parts := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		if t := line.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Spans returns all spans in the block in reading order
func (b *Block) Spans() []Span {
	var spans []Span
	for _, line := range b.Lines {
		spans = append(spans, line.Spans...)
	}
	return spans
}

// AverageSpanSize returns the mean font size across the block's spans,
// or 0 if the block has no spans
func (b *Block) AverageSpanSize() float64 {
	spans := b.Spans()
	if len(spans) == 0 {
		return 0
	}
	var total float64
	for _, s := range spans {
		total += s.Size
	}
	return total / float64(len(spans))
}

// IsBold reports whether any span in the block is bold
func (b *Block) IsBold() bool {
	for _, s := range b.Spans() {
		if s.Bold {
			return true
		}
	}
	return false
}

// HasText reports whether the block has at least one non-empty line
func (b *Block) HasText() bool {
	for _, line := range b.Lines {
		if line.Text() != "" {
			return true
		}
	}
	return false
}
