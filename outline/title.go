package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outliner/internal/textutil"
	"github.com/tsawler/outliner/model"
)

// TitleExtractor reconstructs the document title from the first page
type TitleExtractor struct {
	config Config
}

// NewTitleExtractor creates an extractor with default configuration
func NewTitleExtractor() *TitleExtractor {
	return NewTitleExtractorWithConfig(DefaultConfig())
}

// NewTitleExtractorWithConfig creates an extractor with custom configuration
func NewTitleExtractorWithConfig(config Config) *TitleExtractor {
	config.defaults()
	return &TitleExtractor{config: config}
}

// titleCandidate is a first-page block that may be part of the title
type titleCandidate struct {
	text string
	size float64
	y    float64
}

// Extract returns the reconstructed title, or "" when the first page has no
// plausible title text. Callers fall back to a name derived from the source
// identifier.
func (e *TitleExtractor) Extract(doc *model.Document) string {
	if doc == nil || len(doc.Pages) == 0 {
		return ""
	}

	page := doc.Pages[0]
	regionHeight := page.Height * e.config.TitleRegionRatio

	var candidates []titleCandidate
	for _, block := range page.TextBlocks() {
		if block.BBox.Top() >= regionHeight {
			continue
		}
		text := textutil.Collapse(block.Text())
		if len(text) < 5 {
			continue
		}

		size := block.AverageSpanSize()
		leftMargin := block.BBox.Left()
		rightMargin := page.Width - block.BBox.Right()
		centered := math.Abs(leftMargin-rightMargin) < page.Width*e.config.TitleCenterRatio

		// Titles are usually large and often bold or centered
		if size > e.config.TitleMinSize && (centered || block.IsBold()) {
			candidates = append(candidates, titleCandidate{
				text: text,
				size: size,
				y:    block.BBox.Top(),
			})
		}
	}

	if len(candidates) == 0 {
		return e.largestLine(page, regionHeight)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].y < candidates[j].y
	})

	// Merge vertically adjacent candidates into one title; the first large
	// gap marks the end of the title block
	parts := []string{candidates[0].text}
	lastY := candidates[0].y
	for _, cand := range candidates[1:] {
		if math.Abs(cand.y-lastY) >= e.config.TitleMergeGap {
			break
		}
		parts = append(parts, cand.text)
		lastY = cand.y
	}

	return cleanTitle(strings.Join(parts, " "))
}

// largestLine falls back to the single largest-font line in the title region
func (e *TitleExtractor) largestLine(page *model.Page, regionHeight float64) string {
	var best string
	var bestSize float64

	for _, block := range page.TextBlocks() {
		if block.BBox.Top() >= regionHeight {
			continue
		}
		for _, line := range block.Lines {
			text := textutil.Collapse(line.Text())
			if len(text) < 5 || len(line.Spans) == 0 {
				continue
			}
			var size float64
			for _, s := range line.Spans {
				size += s.Size
			}
			size /= float64(len(line.Spans))
			if size > bestSize {
				bestSize = size
				best = text
			}
		}
	}

	return cleanTitle(best)
}

// cleanTitle collapses whitespace and repairs repeated-fragment corruption,
// where ingestion artifacts duplicate a short leading phrase (e.g.
// "RFP: R RFP: R RFP: Request for Proposal")
func cleanTitle(text string) string {
	text = textutil.Collapse(text)
	words := strings.Fields(text)
	if len(words) < 4 {
		return text
	}

	fragment := strings.Join(words[:3], " ")
	if strings.Count(text, fragment) <= 2 {
		return text
	}

	// Keep the first suffix that no longer starts with the repeating fragment
	for i := range words {
		suffix := strings.Join(words[i:], " ")
		if !strings.HasPrefix(suffix, fragment) {
			return suffix
		}
	}
	return text
}
