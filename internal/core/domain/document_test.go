package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDocument_Excerpt tests content truncation for preview panes
func TestDocument_Excerpt(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		n        int
		expected string
	}{
		{
			name:     "Short content returned whole",
			content:  "Kobe Bryant scored 81 points.",
			n:        100,
			expected: "Kobe Bryant scored 81 points.",
		},
		{
			name:     "Long content truncated with ellipsis",
			content:  "The Los Angeles Lakers are an American professional basketball team",
			n:        20,
			expected: "The Los Angeles Lake...",
		},
		{
			name:     "Exact length returned whole",
			content:  "basketball",
			n:        10,
			expected: "basketball",
		},
		{
			name:     "Empty content",
			content:  "",
			n:        10,
			expected: "",
		},
		{
			name:     "Multi-byte runes counted as runes",
			content:  "défense défense défense",
			n:        7,
			expected: "défense...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Content: tt.content}
			assert.Equal(t, tt.expected, doc.Excerpt(tt.n))
		})
	}
}

// TestAnswer_FormattedScore tests four-decimal score rendering
func TestAnswer_FormattedScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"High confidence", 0.987654, "0.9877"},
		{"Low confidence", 0.00012, "0.0001"},
		{"Zero", 0, "0.0000"},
		{"Full confidence", 1, "1.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Answer{Score: tt.score}
			assert.Equal(t, tt.expected, a.FormattedScore())
		})
	}
}
