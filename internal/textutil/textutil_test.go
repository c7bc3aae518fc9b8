package textutil

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Budget Report", "Budget Report"},
		{"leading and trailing", "  Budget Report  ", "Budget Report"},
		{"internal runs", "Budget\t\t Report\n2023", "Budget Report 2023"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collapse(tt.input); got != tt.expected {
				t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{"exact", "Annual Report", "Annual Report", true},
		{"case differs", "ANNUAL REPORT", "annual report", true},
		{"substring", "2023 Annual Report Summary", "annual report", true},
		{"absent", "Quarterly Review", "annual", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.s, tt.substr); got != tt.expected {
				t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.expected)
			}
		})
	}
}

func TestStripTrailingDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Confidential Draft 3", "Confidential Draft"},
		{"Confidential Draft 12", "Confidential Draft"},
		{"Chapter 3 Overview", "Chapter 3 Overview"},
		{"42", ""},
	}

	for _, tt := range tests {
		if got := StripTrailingDigits(tt.input); got != tt.expected {
			t.Errorf("StripTrailingDigits(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStripPageMarkers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Page 3 of 12", ""},
		{"Confidential page 3 of 12", "Confidential"},
		{"PAGE 1 OF 2 Draft", "Draft"},
		{"No marker here", "No marker here"},
	}

	for _, tt := range tests {
		if got := StripPageMarkers(tt.input); got != tt.expected {
			t.Errorf("StripPageMarkers(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"42", true},
		{" 42 ", true},
		{"4.2", false},
		{"page 42", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.input); got != tt.expected {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"INTRODUCTION", true},
		{"CHAPTER 1", true},
		{"Introduction", false},
		{"introduction", false},
		{"123", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAllCaps(tt.input); got != tt.expected {
			t.Errorf("IsAllCaps(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"Getting Started Guide", 3},
		{"One", 1},
		{"", 0},
		{"  spaced   out  ", 2},
	}

	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.expected {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
