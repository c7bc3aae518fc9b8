package outline

import "log/slog"

// Config holds every tunable threshold in the pipeline. The zero value is
// not usable; start from DefaultConfig and override fields as needed.
// All thresholds are named so that the two historical variants of these
// heuristics collapse into one parameterized pipeline.
type Config struct {
	// BodySizeDefault is the body font size assumed when a document has no
	// text at all
	BodySizeDefault float64 `yaml:"body_size_default"`

	// TierMinRatio is the minimum size ratio over body text for a font size
	// to count as heading-sized
	TierMinRatio float64 `yaml:"tier_min_ratio"`

	// TierMergeRatio merges near-duplicate tier sizes: a size joins the tier
	// list only when it is smaller than the last kept tier by more than this
	// fraction
	TierMergeRatio float64 `yaml:"tier_merge_ratio"`

	// MaxTiers caps the number of heading size tiers
	MaxTiers int `yaml:"max_tiers"`

	// HeaderZoneRatio is the fraction of page height scanned from the top
	// for recurring headers
	HeaderZoneRatio float64 `yaml:"header_zone_ratio"`

	// FooterZoneRatio is the fraction of page height scanned from the bottom
	// for recurring footers
	FooterZoneRatio float64 `yaml:"footer_zone_ratio"`

	// MinRepeatRatio is the fraction of pages on which zone text must occur
	// to be suppressed
	MinRepeatRatio float64 `yaml:"min_repeat_ratio"`

	// MinRepeatPages is the absolute floor for the occurrence count
	MinRepeatPages int `yaml:"min_repeat_pages"`

	// MinZoneTextLen ignores zone text shorter than this when counting
	// repetitions (bare page numbers are handled separately)
	MinZoneTextLen int `yaml:"min_zone_text_len"`

	// FooterSubstringLen is the minimum footer entry length for substring
	// matching; shorter entries match exactly only
	FooterSubstringLen int `yaml:"footer_substring_len"`

	// TitleRegionRatio is the fraction of the first page's height, from the
	// top, searched for title candidates
	TitleRegionRatio float64 `yaml:"title_region_ratio"`

	// TitleMinSize is the minimum mean span size for a title candidate
	TitleMinSize float64 `yaml:"title_min_size"`

	// TitleCenterRatio bounds |left margin - right margin| as a fraction of
	// page width for a block to count as centered
	TitleCenterRatio float64 `yaml:"title_center_ratio"`

	// TitleMergeGap is the maximum vertical gap, in points, between adjacent
	// title candidates to merge them into one title
	TitleMergeGap float64 `yaml:"title_merge_gap"`

	// MinHeadingLength and MaxHeadingLength bound heading text length in
	// characters
	MinHeadingLength int `yaml:"min_heading_length"`
	MaxHeadingLength int `yaml:"max_heading_length"`

	// MaxSentenceWords is the word count above which period-terminated,
	// mixed-case text is rejected as prose
	MaxSentenceWords int `yaml:"max_sentence_words"`

	// HeadingSizeRatio is the minimum size ratio over body text for the
	// font-size heading rule
	HeadingSizeRatio float64 `yaml:"heading_size_ratio"`

	// ShortHeadingWords is the word count below which a block counts as
	// short for the font-size heading rule
	ShortHeadingWords int `yaml:"short_heading_words"`

	// LeftIndentRatio and RightSpaceRatio describe a left-aligned standalone
	// line: left edge within the left LeftIndentRatio of the page and at
	// least RightSpaceRatio of the page width free on the right
	LeftIndentRatio float64 `yaml:"left_indent_ratio"`
	RightSpaceRatio float64 `yaml:"right_space_ratio"`

	// TierSizeTolerance widens tier band membership to absorb small font
	// size variations
	TierSizeTolerance float64 `yaml:"tier_size_tolerance"`

	// MaxLevel caps outline entry levels
	MaxLevel int `yaml:"max_level"`

	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the pipeline defaults
func DefaultConfig() Config {
	return Config{
		BodySizeDefault:    10.0,
		TierMinRatio:       1.05,
		TierMergeRatio:     0.10,
		MaxTiers:           5,
		HeaderZoneRatio:    0.15,
		FooterZoneRatio:    0.15,
		MinRepeatRatio:     0.5,
		MinRepeatPages:     2,
		MinZoneTextLen:     3,
		FooterSubstringLen: 6,
		TitleRegionRatio:   0.5,
		TitleMinSize:       14.0,
		TitleCenterRatio:   0.25,
		TitleMergeGap:      60.0,
		MinHeadingLength:   3,
		MaxHeadingLength:   250,
		MaxSentenceWords:   15,
		HeadingSizeRatio:   1.1,
		ShortHeadingWords:  15,
		LeftIndentRatio:    0.2,
		RightSpaceRatio:    0.3,
		TierSizeTolerance:  1.02,
		MaxLevel:           5,
	}
}

// defaults fills unset fields that have no meaningful zero value
func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MaxLevel <= 0 {
		c.MaxLevel = 5
	}
	if c.BodySizeDefault <= 0 {
		c.BodySizeDefault = 10.0
	}
}
