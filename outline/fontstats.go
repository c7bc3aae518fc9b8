package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// FontStats summarizes the document's font size distribution
type FontStats struct {
	// BodySize is the font size covering the most characters, presumed to
	// be ordinary prose text
	BodySize float64

	// Tiers are the detected heading sizes, strictly descending. The
	// 1-based index into this list is a heading level hint.
	Tiers []float64
}

// TierCount returns the number of detected heading tiers
func (s FontStats) TierCount() int {
	return len(s.Tiers)
}

// FontAnalyzer builds font statistics from a document's spans
type FontAnalyzer struct {
	config Config
}

// NewFontAnalyzer creates an analyzer with default configuration
func NewFontAnalyzer() *FontAnalyzer {
	return NewFontAnalyzerWithConfig(DefaultConfig())
}

// NewFontAnalyzerWithConfig creates an analyzer with custom configuration
func NewFontAnalyzerWithConfig(config Config) *FontAnalyzer {
	config.defaults()
	return &FontAnalyzer{config: config}
}

// Analyze scans every span in the document and derives the body text size
// and the descending heading tier list. It never fails: an empty document
// yields the default body size and no tiers.
func (a *FontAnalyzer) Analyze(doc *model.Document) FontStats {
	stats := FontStats{BodySize: a.config.BodySizeDefault}
	if doc == nil {
		return stats
	}

	// Weight sizes by trimmed character count so short decorative spans do
	// not dominate. Body detection buckets at 0.5pt; tier candidates keep
	// 0.1pt precision.
	bodyWeights := make(map[float64]float64)
	allWeights := make(map[float64]float64)
	tierWeights := make(map[float64]float64)

	for _, page := range doc.Pages {
		for _, block := range page.TextBlocks() {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					chars := float64(len([]rune(strings.TrimSpace(span.Text))))
					if chars == 0 {
						continue
					}
					bucket := math.Round(span.Size*2) / 2
					allWeights[bucket] += chars
					if !span.Bold {
						bodyWeights[bucket] += chars
					}
					tierWeights[math.Round(span.Size*10)/10] += chars
				}
			}
		}
	}

	// Prefer non-bold text for the body size; fall back to all spans when
	// the whole document is bold.
	weights := bodyWeights
	if len(weights) == 0 {
		weights = allWeights
	}
	if len(weights) == 0 {
		return stats
	}

	stats.BodySize = heaviestSize(weights)
	stats.Tiers = a.consolidateTiers(tierWeights, stats.BodySize)

	a.config.Logger.Debug("font statistics",
		"body_size", stats.BodySize, "tiers", stats.Tiers)

	return stats
}

// heaviestSize returns the size with the greatest accumulated weight,
// preferring the smaller size on ties for determinism
func heaviestSize(weights map[float64]float64) float64 {
	sizes := make([]float64, 0, len(weights))
	for size := range weights {
		sizes = append(sizes, size)
	}
	sort.Float64s(sizes)

	best := sizes[0]
	for _, size := range sizes[1:] {
		if weights[size] > weights[best] {
			best = size
		}
	}
	return best
}

// consolidateTiers keeps sizes above the heading threshold, sorted
// descending, merging near-duplicates and capping the list length
func (a *FontAnalyzer) consolidateTiers(weights map[float64]float64, bodySize float64) []float64 {
	var sizes []float64
	for size := range weights {
		if size > bodySize*a.config.TierMinRatio {
			sizes = append(sizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var tiers []float64
	for _, size := range sizes {
		if len(tiers) >= a.config.MaxTiers {
			break
		}
		if len(tiers) == 0 {
			tiers = append(tiers, size)
			continue
		}
		last := tiers[len(tiers)-1]
		// Sizes within the merge ratio of the last tier are the same
		// visual tier (e.g. 14.05 vs 14.2)
		if last-size > last*a.config.TierMergeRatio {
			tiers = append(tiers, size)
		}
	}

	return tiers
}
