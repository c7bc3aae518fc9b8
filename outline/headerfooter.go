package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/internal/textutil"
	"github.com/tsawler/outliner/model"
)

// SuppressionSet holds recurring header and footer text excluded from
// heading consideration. Header membership is an exact match on normalized
// text; footer membership additionally allows digit-stripped and substring
// matches so page-number variation does not defeat suppression.
type SuppressionSet struct {
	headers map[string]struct{}
	footers map[string]struct{}

	// footerSubstringLen is the minimum entry length for substring matching
	footerSubstringLen int
}

// NewSuppressionSet creates an empty suppression set
func NewSuppressionSet() *SuppressionSet {
	return &SuppressionSet{
		headers:            make(map[string]struct{}),
		footers:            make(map[string]struct{}),
		footerSubstringLen: DefaultConfig().FooterSubstringLen,
	}
}

// AddHeader records a normalized header string
func (s *SuppressionSet) AddHeader(text string) {
	if text != "" {
		s.headers[text] = struct{}{}
	}
}

// AddFooter records a normalized footer string
func (s *SuppressionSet) AddFooter(text string) {
	if text != "" {
		s.footers[text] = struct{}{}
	}
}

// MatchesHeader reports whether the text exactly matches a suppressed header
func (s *SuppressionSet) MatchesHeader(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s.headers[textutil.Collapse(text)]
	return ok
}

// MatchesFooter reports whether the text matches a suppressed footer:
// exactly, after stripping page-number digits, or by containing a footer
// entry long enough for substring matching
func (s *SuppressionSet) MatchesFooter(text string) bool {
	if s == nil {
		return false
	}

	collapsed := textutil.Collapse(text)
	if _, ok := s.footers[collapsed]; ok {
		return true
	}

	stripped := normalizeFooterText(collapsed)
	if stripped != "" {
		if _, ok := s.footers[stripped]; ok {
			return true
		}
	}

	for footer := range s.footers {
		if len(footer) >= s.footerSubstringLen && strings.Contains(collapsed, footer) {
			return true
		}
	}
	return false
}

// Headers returns the suppressed header strings, sorted
func (s *SuppressionSet) Headers() []string {
	return sortedKeys(s.headers)
}

// Footers returns the suppressed footer strings, sorted
func (s *SuppressionSet) Footers() []string {
	return sortedKeys(s.footers)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeFooterText strips "Page X of Y" markers and trailing digit runs
// so page-number variation does not defeat repetition detection
func normalizeFooterText(text string) string {
	text = textutil.StripPageMarkers(text)
	text = textutil.StripTrailingDigits(text)
	return textutil.Collapse(text)
}

// HeaderFooterDetector finds text repeated in page margin zones
type HeaderFooterDetector struct {
	config Config
}

// NewHeaderFooterDetector creates a detector with default configuration
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return NewHeaderFooterDetectorWithConfig(DefaultConfig())
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration
func NewHeaderFooterDetectorWithConfig(config Config) *HeaderFooterDetector {
	config.defaults()
	return &HeaderFooterDetector{config: config}
}

// Detect scans the margin zones of every page and returns the suppression
// sets. Text qualifies when it occurs on at least max(MinRepeatPages,
// pages x MinRepeatRatio) pages; purely numeric zone text is always
// suppressed as a footer regardless of frequency.
func (d *HeaderFooterDetector) Detect(doc *model.Document) *SuppressionSet {
	set := NewSuppressionSet()
	set.footerSubstringLen = d.config.FooterSubstringLen
	if doc == nil || len(doc.Pages) == 0 {
		return set
	}

	headerCounts := make(map[string]int)
	footerCounts := make(map[string]int)

	for _, page := range doc.Pages {
		headerZone := model.NewBBox(0, 0, page.Width, page.Height*d.config.HeaderZoneRatio)
		footerZone := model.NewBBox(0, page.Height*(1-d.config.FooterZoneRatio),
			page.Width, page.Height*d.config.FooterZoneRatio)

		if text := zoneText(page, headerZone); text != "" {
			if textutil.IsNumeric(text) {
				set.AddFooter(text)
			} else if len(text) >= d.config.MinZoneTextLen {
				headerCounts[text]++
			}
		}

		if text := zoneText(page, footerZone); text != "" {
			if textutil.IsNumeric(text) {
				set.AddFooter(text)
				continue
			}
			normalized := normalizeFooterText(text)
			if len(normalized) >= d.config.MinZoneTextLen {
				footerCounts[normalized]++
			}
		}
	}

	minOccurrences := int(float64(len(doc.Pages)) * d.config.MinRepeatRatio)
	if minOccurrences < d.config.MinRepeatPages {
		minOccurrences = d.config.MinRepeatPages
	}

	for text, count := range headerCounts {
		if count >= minOccurrences {
			set.AddHeader(text)
		}
	}
	for text, count := range footerCounts {
		if count >= minOccurrences {
			set.AddFooter(text)
		}
	}

	d.config.Logger.Debug("header/footer detection",
		"headers", set.Headers(), "footers", set.Footers())

	return set
}

// zoneText collects the text of lines whose center falls inside the zone,
// joined in reading order
func zoneText(page *model.Page, zone model.BBox) string {
	var parts []string
	for _, block := range page.BlocksInRegion(zone) {
		for _, line := range block.Lines {
			if zone.Contains(line.BBox.Center()) {
				if t := line.Text(); t != "" {
					parts = append(parts, t)
				}
			}
		}
	}
	return textutil.Collapse(strings.Join(parts, " "))
}
