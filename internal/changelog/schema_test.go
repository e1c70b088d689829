package changelog

import (
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON(t *testing.T) {
	t.Parallel()

	raw, err := SchemaJSON()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(raw, "\n"))

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &schema))

	assert.Equal(t, SchemaID, schema["$id"])
	assert.Equal(t, "Changelog", schema["title"])
	assert.Equal(t, false, schema["additionalProperties"])

	definitions, ok := schema["definitions"].(map[string]any)
	require.True(t, ok)

	version, ok := definitions["Version"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, version["additionalProperties"])

	props := version["properties"].(map[string]any)
	date := props["date"].(map[string]any)
	assert.Equal(t, DatePattern, date["pattern"])

	// The flattened change categories sit inline on Version.
	for _, cat := range Categories() {
		assert.Contains(t, props, cat)
	}
}

func TestDatePattern(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(DatePattern)

	valid := []string{"2025-01-01", "1999-12-31", "2026-08-30"}
	for _, date := range valid {
		assert.True(t, pattern.MatchString(date), date)
	}

	invalid := []string{"2025-1-1", "2025/01/01", "01-01-2025", "2025-19-01", "2025-01-41", "someday"}
	for _, date := range invalid {
		assert.False(t, pattern.MatchString(date), date)
	}
}

func TestSchemaJSON_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := SchemaJSON()
	require.NoError(t, err)
	second, err := SchemaJSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
