package outline

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/internal/textutil"
	"github.com/tsawler/outliner/model"
)

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

var (
	// datePattern matches standalone dates ("March 21, 2003" or "21 March 2003")
	datePattern = regexp.MustCompile(
		`(?i)^(` + monthNames + `)\s+\d{1,2},?\s+\d{4}$|^\d{1,2}\s+(` + monthNames + `)\s+\d{4}$`)

	// standaloneSerial matches a serial number with no trailing content,
	// e.g. "1.", "2.3", "A.", "(a)"
	standaloneSerial = regexp.MustCompile(`^((\d+(\.\d+)*\s*)|([A-Z]\.)|(\([a-z]\)))\s*$`)

	// Structural numbering patterns: numbered text is almost always a heading
	decimalHeading  = regexp.MustCompile(`^(\d+(\.\d+)*)\s+\S`)
	chapterHeading  = regexp.MustCompile(`(?i)^chapter\s+\d+:`)
	appendixHeading = regexp.MustCompile(`(?i)^appendix\s+[A-Z]:`)
)

// matchesNumbering reports whether text starts with a structural numbering
// pattern, returning the decimal prefix when present ("" for
// Chapter/Appendix forms)
func matchesNumbering(text string) (bool, string) {
	if m := decimalHeading.FindStringSubmatch(text); m != nil {
		return true, m[1]
	}
	if chapterHeading.MatchString(text) || appendixHeading.MatchString(text) {
		return true, ""
	}
	return false, ""
}

// Candidate is a block accepted as a heading, before level assignment
type Candidate struct {
	// Text is the collapsed block text
	Text string

	// Page is the 1-based page number
	Page int

	// Size is the mean span size of the block
	Size float64

	// Y is the block's top coordinate, used for document ordering
	Y float64

	// Bold indicates any span in the block is bold
	Bold bool
}

// Classifier applies the layered heading predicate to text blocks
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config Config) *Classifier {
	config.defaults()
	return &Classifier{config: config}
}

// Classify walks every text block in document order and returns the accepted
// heading candidates. The predicate is pure and per-block, so blocks may be
// evaluated in any order.
func (c *Classifier) Classify(doc *model.Document, stats FontStats, sup *SuppressionSet) []Candidate {
	var candidates []Candidate
	if doc == nil {
		return candidates
	}

	for _, page := range doc.Pages {
		for _, block := range page.TextBlocks() {
			if !c.IsHeading(block, page, stats, sup) {
				continue
			}
			candidates = append(candidates, Candidate{
				Text: textutil.Collapse(block.Text()),
				Page: page.Number,
				Size: block.AverageSpanSize(),
				Y:    block.BBox.Top(),
				Bold: block.IsBold(),
			})
		}
	}

	return candidates
}

// IsHeading decides whether one text block is a heading. The filters run in
// layers: cheap rejections first, then the unconditional numbering accept,
// then the font-size rule.
func (c *Classifier) IsHeading(block *model.Block, page *model.Page, stats FontStats, sup *SuppressionSet) bool {
	if block == nil || block.Type != model.BlockText || !block.HasText() {
		return false
	}

	text := textutil.Collapse(block.Text())

	// Length bounds
	if len(text) < c.config.MinHeadingLength || len(text) > c.config.MaxHeadingLength {
		return false
	}

	// Recurring header/footer text
	if sup.MatchesHeader(text) || sup.MatchesFooter(text) {
		return false
	}

	// Bare numbers, dates, and serial numbers with no content
	if textutil.IsNumeric(text) || datePattern.MatchString(text) || standaloneSerial.MatchString(text) {
		return false
	}

	// Sentence-shaped prose
	allCaps := textutil.IsAllCaps(text) && len(text) > 4
	if strings.HasSuffix(text, ".") && !allCaps &&
		textutil.WordCount(text) > c.config.MaxSentenceWords {
		return false
	}

	// Structural numbering is accepted unconditionally
	if numbered, _ := matchesNumbering(text); numbered {
		return true
	}

	// Font-size rule: larger than body text, plus at least one supporting
	// signal favoring short standalone lines over justified paragraph text
	size := block.AverageSpanSize()
	if stats.BodySize <= 0 || size <= stats.BodySize*c.config.HeadingSizeRatio {
		return false
	}

	short := textutil.WordCount(text) < c.config.ShortHeadingWords
	leftAligned := block.BBox.Left() < page.Width*c.config.LeftIndentRatio &&
		page.Width-block.BBox.Right() > page.Width*c.config.RightSpaceRatio

	return block.IsBold() || short || allCaps || leftAligned
}
