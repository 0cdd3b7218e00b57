package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  Abu Sayyaf ", "AL-QAIDA  "},
			expected: []string{"Abu Sayyaf", "AL-QAIDA"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"Ana Lee", "John Smith", "Ana Lee"},
			expected: []string{"Ana Lee", "John Smith"},
		},
		{
			name:     "removes empty and whitespace-only entries",
			input:    []string{"Ana Lee", "", "   ", "John Smith"},
			expected: []string{"Ana Lee", "John Smith"},
		},
		{
			name:     "preserves case",
			input:    []string{"Ana Lee", "ana lee", "ANA LEE"},
			expected: []string{"Ana Lee", "ana lee", "ANA LEE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestDedupeAndTrimLower(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases before deduplicating",
			input:    []string{"Iran", "IRAN", " iran "},
			expected: []string{"iran"},
		},
		{
			name:     "keeps distinct entries in order",
			input:    []string{"Panama", "Haiti", "South Sudan"},
			expected: []string{"panama", "haiti", "south sudan"},
		},
		{
			name:     "drops empties",
			input:    []string{"", "  ", "Syria"},
			expected: []string{"syria"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimLower(tt.input))
		})
	}
}
