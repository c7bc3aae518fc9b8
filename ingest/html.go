package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/outliner/model"
)

// Synthetic page geometry for HTML sources. HTML carries no physical
// layout, so elements are placed on Letter-sized pages top to bottom and
// a new page starts when the running position passes the bottom margin.
const (
	htmlPageWidth   = 612.0
	htmlPageHeight  = 792.0
	htmlMargin      = 36.0
	htmlContentLeft = htmlMargin
	htmlContentTop  = htmlMargin
)

// headingSizes maps h1..h6 to synthetic font sizes. The steps keep each
// rank in its own tier when the font histogram runs over the page.
var headingSizes = [6]float64{24, 20, 16, 14, 13, 12}

const (
	htmlTitleSize = 28.0
	htmlBodySize  = 11.0
)

type htmlElementType int

const (
	htmlHeading htmlElementType = iota
	htmlParagraph
	htmlListItem
)

type htmlElement struct {
	Type  htmlElementType
	Text  string
	Level int // heading rank 1..6, or list nesting depth
}

// OpenHTML reads an HTML file and builds a document with synthetic
// geometry
func OpenHTML(filename string) (*model.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening html file: %w", err)
	}
	defer f.Close()

	return ReadHTML(f, filepath.Base(filename))
}

// ReadHTML parses HTML from a reader. The name is the source identifier
// used for fallback titles when the document has no title element.
func ReadHTML(r io.Reader, name string) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	p := &htmlParser{}
	p.extractHead(root)
	p.extractBody(root)

	return p.document(name), nil
}

// htmlParser accumulates content elements during DOM traversal
type htmlParser struct {
	title    string
	elements []htmlElement
}

func (p *htmlParser) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "title" {
				p.title = getTextContent(c)
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.extractHead(c)
	}
}

func (p *htmlParser) extractBody(n *html.Node) {
	body := findElement(n, "body")
	if body == nil {
		body = n
	}
	p.traverse(body, 0)
}

// traverse walks the DOM collecting headings, paragraphs, and list items.
// listDepth tracks ul/ol nesting for list items.
func (p *htmlParser) traverse(n *html.Node, listDepth int) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			rank := int(n.Data[1] - '0')
			if text := getTextContent(n); text != "" {
				p.elements = append(p.elements, htmlElement{
					Type:  htmlHeading,
					Text:  text,
					Level: rank,
				})
			}
			return

		case "p", "blockquote", "pre":
			if text := getTextContent(n); text != "" && !isBlockContainer(n) {
				p.elements = append(p.elements, htmlElement{
					Type: htmlParagraph,
					Text: text,
				})
				return
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.traverse(c, listDepth)
			}
			return

		case "ul", "ol":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.traverse(c, listDepth+1)
			}
			return

		case "li":
			if text := getDirectTextContent(n); text != "" {
				p.elements = append(p.elements, htmlElement{
					Type:  htmlListItem,
					Text:  text,
					Level: listDepth,
				})
			}
			// Nested lists under this item
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					p.traverse(c, listDepth)
				}
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.traverse(c, listDepth)
	}
}

// document lays the collected elements out on synthetic pages
func (p *htmlParser) document(name string) *model.Document {
	doc := model.NewDocument(name)
	page := model.NewPage(htmlPageWidth, htmlPageHeight)
	y := htmlContentTop

	flush := func() {
		doc.AddPage(page)
		page = model.NewPage(htmlPageWidth, htmlPageHeight)
		y = htmlContentTop
	}

	place := func(text string, size float64, bold, centered bool, indent float64) {
		height := size * 1.4
		if y+height > htmlPageHeight-htmlMargin {
			flush()
		}
		width := htmlPageWidth - 2*htmlContentLeft - indent
		x := htmlContentLeft + indent
		if centered {
			// Approximate rendered width so the block sits visually centered
			width = estimateTextWidth(text, size)
			if width > htmlPageWidth-2*htmlContentLeft {
				width = htmlPageWidth - 2*htmlContentLeft
			}
			x = (htmlPageWidth - width) / 2
		}
		bbox := model.NewBBox(x, y, width, height)
		font := "Helvetica"
		if bold {
			font = "Helvetica-Bold"
		}
		page.AddBlock(&model.Block{
			Type: model.BlockText,
			BBox: bbox,
			Lines: []*model.Line{{
				Spans: []model.Span{{
					Text:     text,
					Size:     size,
					FontName: font,
					Bold:     bold,
					BBox:     bbox,
				}},
				BBox: bbox,
			}},
		})
		y += height + size*0.6
	}

	if p.title != "" {
		place(p.title, htmlTitleSize, true, true, 0)
		y += 12
	}

	for _, elem := range p.elements {
		switch elem.Type {
		case htmlHeading:
			rank := elem.Level
			if rank < 1 {
				rank = 1
			}
			if rank > 6 {
				rank = 6
			}
			place(elem.Text, headingSizes[rank-1], true, false, 0)
		case htmlParagraph:
			place(elem.Text, htmlBodySize, false, false, 0)
		case htmlListItem:
			place(elem.Text, htmlBodySize, false, false, float64(elem.Level)*18)
		}
	}

	if len(page.Blocks) > 0 || doc.PageCount() == 0 {
		doc.AddPage(page)
	}

	return doc
}

// estimateTextWidth approximates a rendered width from the glyph count.
// 0.5em per glyph is the usual rough figure for proportional faces.
func estimateTextWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * 0.5
}

func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "nav":
		return true
	}
	return false
}

func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "article", "section":
				return true
			}
		}
	}
	return false
}

func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func getTextContent(n *html.Node) string {
	var sb strings.Builder
	getTextContentRecursive(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func getTextContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
			sb.WriteString(" ")
		}
	}
}

// getDirectTextContent gets text from a node excluding nested block
// elements, so list items do not swallow their sublists
func getDirectTextContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else if c.Type == html.ElementNode {
			switch c.Data {
			case "ul", "ol", "div", "p", "table", "blockquote":
			default:
				sb.WriteString(getTextContent(c))
			}
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
