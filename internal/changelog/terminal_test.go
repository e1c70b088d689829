package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTerminal_Plain(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Text: "pending", Category: "added", Version: UnreleasedName},
		{Text: "a fix", Category: "fixed", Version: "1.0.0"},
		{Text: "another fix", Category: "fixed", Version: "1.0.0"},
	}

	var b strings.Builder
	require.NoError(t, FormatTerminal(entries, &b, FormatOptions{Plain: true}))
	out := b.String()

	assert.Contains(t, out, "## Unreleased")
	assert.Contains(t, out, "## 1.0.0")
	assert.Contains(t, out, "### Added")
	assert.Contains(t, out, "### Fixed")
	assert.Contains(t, out, "  - pending")
	assert.Contains(t, out, "  - a fix")

	// Versions are separated by a blank line.
	assert.Contains(t, out, "\n\n## 1.0.0")
}

func TestFormatTerminal_Empty(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, FormatTerminal(nil, &b, FormatOptions{Plain: true}))
	assert.Empty(t, b.String())
}

func TestFormatVersion_Plain(t *testing.T) {
	t.Parallel()

	v := &Version{
		Version: "1.0.0",
		Tag:     "v1.0.0",
		Date:    "2025-01-01",
		Yanked:  strPtr("bad release"),
		Changes: Changes{Removed: []string{"old thing"}},
	}

	var b strings.Builder
	require.NoError(t, FormatVersion(v, &b, FormatOptions{Plain: true, MaxWidth: 80}))
	out := b.String()

	assert.Contains(t, out, "## 1.0.0 (2025-01-01)")
	assert.Contains(t, out, "[YANKED] bad release")
	assert.Contains(t, out, "### Removed")
	assert.Contains(t, out, "  - old thing")
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		text     string
		maxWidth int
		want     string
	}{
		"short text unchanged": {
			text:     "short",
			maxWidth: 20,
			want:     "short",
		},
		"wraps at space": {
			text:     "aaaa bbbb cccc",
			maxWidth: 9,
			want:     "aaaa\n    bbbb cccc",
		},
		"zero width unchanged": {
			text:     "whatever text",
			maxWidth: 0,
			want:     "whatever text",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.text, tt.maxWidth, "    "))
		})
	}
}
