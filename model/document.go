package model

import "strings"

// Document represents one document as reported by the layout-ingestion
// collaborator. It is transient: it exists only for the duration of one
// extraction call and is never mutated by the pipeline.
type Document struct {
	// Name is the source identifier (typically the file name). It is used
	// to derive a fallback title when no title can be extracted.
	Name string

	// IsForm indicates the source is a fillable form. Forms typically lack
	// a semantic outline, so extraction returns the title only.
	IsForm bool

	// Pages in document order
	Pages []*Page
}

// NewDocument creates a new empty document with the given source name
func NewDocument(name string) *Document {
	return &Document{
		Name:  name,
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document, assigning its 1-based number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// HasText reports whether the document contains any non-empty text span
func (d *Document) HasText() bool {
	for _, page := range d.Pages {
		for _, block := range page.TextBlocks() {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					if strings.TrimSpace(span.Text) != "" {
						return true
					}
				}
			}
		}
	}
	return false
}

// DisplayName returns a human-readable name derived from the source
// identifier: the base name without extension, with separator characters
// replaced by spaces.
func (d *Document) DisplayName() string {
	name := d.Name
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// Page represents a single page in a document
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []*Block // Ordered blocks in document reading order
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]*Block, 0),
	}
}

// AddBlock adds a block to the page
func (p *Page) AddBlock(block *Block) {
	p.Blocks = append(p.Blocks, block)
}

// TextBlocks returns the page's text-type blocks in reading order.
// Only text blocks participate in classification.
func (p *Page) TextBlocks() []*Block {
	var blocks []*Block
	for _, b := range p.Blocks {
		if b.Type == BlockText {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// BlocksInRegion returns text blocks whose bounding box intersects the region
func (p *Page) BlocksInRegion(region BBox) []*Block {
	var blocks []*Block
	for _, b := range p.TextBlocks() {
		if region.Intersects(b.BBox) {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
