package pathspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"DATABASE.HOST", []string{"DATABASE", "HOST"}},
		{"CACHE.REDIS.URL", []string{"CACHE", "REDIS", "URL"}},
		{"HAT", []string{"HAT"}},

		// Empty input is a no-op for the caller
		{"", nil},

		// No content validation: empty segments survive the split
		{"A..B", []string{"A", "", "B"}},
		{".A", []string{"", "A"}},
		{"A.", []string{"A", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.input))
		})
	}
}
