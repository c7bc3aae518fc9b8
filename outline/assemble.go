package outline

import (
	"sort"

	"github.com/tsawler/outliner/internal/textutil"
	"github.com/tsawler/outliner/model"
)

// Assembler orders and deduplicates heading candidates and applies the
// title promotion heuristic to the final entries
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration
func NewAssemblerWithConfig(config Config) *Assembler {
	config.defaults()
	return &Assembler{config: config}
}

// Assemble orders candidates by document position (page ascending, then
// vertical position within the page) and drops duplicate (text, page)
// pairs, keeping the first occurrence. Assemble is idempotent.
func (a *Assembler) Assemble(candidates []Candidate) []Candidate {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].Y < ordered[j].Y
	})

	type key struct {
		text string
		page int
	}
	seen := make(map[key]struct{}, len(ordered))
	unique := ordered[:0]
	for _, cand := range ordered {
		k := key{cand.Text, cand.Page}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, cand)
	}

	return unique
}

// PromoteTitle promotes the first entry to level 1 when its text contains
// the document title as a case-insensitive substring. This corrects
// documents whose title also appears as the first heading.
func (a *Assembler) PromoteTitle(entries []model.OutlineEntry, title string) []model.OutlineEntry {
	if len(entries) == 0 || title == "" {
		return entries
	}
	if textutil.ContainsFold(entries[0].Text, title) {
		entries[0].Level = 1
	}
	return entries
}
