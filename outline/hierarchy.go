package outline

import "github.com/tsawler/outliner/model"

// NormalizeHierarchy repairs non-monotonic level jumps with a single forward
// pass: an entry deeper than the previous entry's level plus one is clamped
// to that bound, so an H1 is never followed directly by an H3.
//
// The pass is locally greedy, with no lookahead: a legitimately deep heading
// that immediately follows a shallow one (true H1 then H4) is flattened to
// H2. That limitation is accepted rather than repaired globally.
func NormalizeHierarchy(entries []model.OutlineEntry) []model.OutlineEntry {
	if len(entries) == 0 {
		return entries
	}

	normalized := make([]model.OutlineEntry, len(entries))
	lastLevel := 0

	for i, entry := range entries {
		level := entry.Level
		if level < 1 {
			level = 1
		}
		if level > lastLevel+1 {
			level = lastLevel + 1
		}
		entry.Level = level
		lastLevel = level
		normalized[i] = entry
	}

	return normalized
}
