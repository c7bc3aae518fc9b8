package outline

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func entriesWithLevels(levels ...int) []model.OutlineEntry {
	entries := make([]model.OutlineEntry, len(levels))
	for i, level := range levels {
		entries[i] = model.OutlineEntry{Level: level, Text: "Heading", Page: 1}
	}
	return entries
}

func TestNormalizeHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"empty", nil, nil},
		{"already monotone", []int{1, 2, 2, 3, 1}, []int{1, 2, 2, 3, 1}},
		{"first entry clamped to one", []int{2}, []int{1}},
		{"jump flattened", []int{1, 3}, []int{1, 2}},
		{"deep jump after return", []int{1, 2, 3, 1, 4}, []int{1, 2, 3, 1, 2}},
		{"invalid level raised", []int{0, 5}, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeHierarchy(entriesWithLevels(tt.input...))
			if len(got) != len(tt.expected) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.expected))
			}
			for i, entry := range got {
				if entry.Level != tt.expected[i] {
					t.Errorf("entry %d level = %d, want %d (input %v)",
						i, entry.Level, tt.expected[i], tt.input)
				}
			}
		})
	}
}

func TestNormalizeHierarchyDoesNotMutateInput(t *testing.T) {
	input := entriesWithLevels(1, 4)
	NormalizeHierarchy(input)

	if input[1].Level != 4 {
		t.Errorf("Input slice mutated: level = %d, want 4", input[1].Level)
	}
}
