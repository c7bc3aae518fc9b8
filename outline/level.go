package outline

import "strings"

// LevelAssigner maps accepted heading candidates to outline levels
type LevelAssigner struct {
	config Config
}

// NewLevelAssigner creates an assigner with default configuration
func NewLevelAssigner() *LevelAssigner {
	return NewLevelAssignerWithConfig(DefaultConfig())
}

// NewLevelAssignerWithConfig creates an assigner with custom configuration
func NewLevelAssignerWithConfig(config Config) *LevelAssigner {
	config.defaults()
	return &LevelAssigner{config: config}
}

// Assign returns the level for a candidate. Explicit numbering takes
// precedence: "2.3.1 Results" is level 3 regardless of font size, and
// Chapter/Appendix forms are level 1. Otherwise the candidate falls into
// the first font tier whose size lies within the tolerance band, defaulting
// to the lowest tier (level 2 when no tiers were detected).
func (a *LevelAssigner) Assign(cand Candidate, tiers []float64) int {
	if level := numberedLevel(cand.Text); level > 0 {
		return a.clamp(level)
	}

	if len(tiers) == 0 {
		return 2
	}

	level := len(tiers)
	for i, tier := range tiers {
		if tier <= cand.Size*a.config.TierSizeTolerance {
			level = i + 1
			break
		}
	}
	return a.clamp(level)
}

// clamp bounds a level to [1, MaxLevel]
func (a *LevelAssigner) clamp(level int) int {
	if level < 1 {
		return 1
	}
	if level > a.config.MaxLevel {
		return a.config.MaxLevel
	}
	return level
}

// numberedLevel derives a level from a structural numbering prefix: the
// count of dot-separated numeric components, or 1 for Chapter/Appendix
// forms. Returns 0 when the text is not numbered.
func numberedLevel(text string) int {
	numbered, prefix := matchesNumbering(text)
	if !numbered {
		return 0
	}
	if prefix == "" {
		// Chapter/Appendix form
		return 1
	}
	return strings.Count(prefix, ".") + 1
}
