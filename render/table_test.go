package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionStates(t *testing.T) {
	headers := []string{"technique", "count"}

	t.Run("absent result", func(t *testing.T) {
		var buf strings.Builder
		Section(&buf, "Detection coverage", headers, nil)

		assert.Contains(t, buf.String(), "Detection coverage")
		assert.Contains(t, buf.String(), "(no results)")
	})

	t.Run("empty result", func(t *testing.T) {
		var buf strings.Builder
		Section(&buf, "Mitigation gaps", headers, [][]string{})

		assert.Contains(t, buf.String(), "(empty)")
		assert.NotContains(t, buf.String(), "(no results)")
	})

	t.Run("populated result", func(t *testing.T) {
		var buf strings.Builder
		Section(&buf, "Object types", headers, [][]string{
			{"attack-pattern", "600"},
			{"intrusion-set", "150"},
		})

		out := buf.String()
		assert.Contains(t, out, "technique")
		assert.Contains(t, out, "attack-pattern")
		assert.Contains(t, out, "150")
		assert.NotContains(t, out, "(empty)")
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays intact", "Phishing", 80, "Phishing"},
		{"exact length stays intact", "abc", 3, "abc"},
		{"long is clipped with ellipsis", "abcdef", 4, "abc…"},
		{"non-positive max disables clipping", "abcdef", 0, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "APT29, FIN7", Join([]string{"APT29", "FIN7"}))
	assert.Equal(t, "", Join(nil))
}
