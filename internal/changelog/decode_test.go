package changelog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `title: Changelog
description: |
  All notable changes documented here.
repository: https://example.com/r
unreleased:
  changed:
    - Reworked the parser
versions:
  "2.0.0":
    tag: v2.0.0
    date: "2025-06-01"
    added:
      - Second release
  "1.0.0":
    tag: v1.0.0
    date: "2025-01-01"
    description: First stable release.
    fixed:
      - Startup crash
`

func TestFromYAML_Valid(t *testing.T) {
	t.Parallel()

	c, err := FromYAML(sampleYAML)
	require.NoError(t, err)

	assert.Equal(t, "Changelog", c.Title)
	assert.Equal(t, "All notable changes documented here.\n", c.Description)
	assert.Equal(t, "https://example.com/r", c.Repository)
	assert.Equal(t, []string{"Reworked the parser"}, c.Unreleased.Changed)

	require.Len(t, c.Versions, 2)
	assert.Equal(t, "2.0.0", c.Versions[0].Version)
	assert.Equal(t, "v2.0.0", c.Versions[0].Tag)
	assert.Equal(t, "2025-06-01", c.Versions[0].Date)
	assert.Nil(t, c.Versions[0].Description)
	assert.Equal(t, []string{"Second release"}, c.Versions[0].Changes.Added)

	assert.Equal(t, "1.0.0", c.Versions[1].Version)
	require.NotNil(t, c.Versions[1].Description)
	assert.Equal(t, "First stable release.", *c.Versions[1].Description)
}

func TestFromYAML_KeyedListOrder(t *testing.T) {
	t.Parallel()

	c, err := FromYAML(sampleYAML)
	require.NoError(t, err)

	// The mapping's document order is the sequence order, newest first.
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, c.ListVersions())

	// Re-encoding preserves the key order.
	encoded, err := c.ToYAML()
	require.NoError(t, err)
	again, err := FromYAML(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, again.ListVersions())
}

func TestFromYAML_Defaults(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		yaml  string
		check func(t *testing.T, c *Changelog)
	}{
		"missing versions defaults to empty": {
			yaml: "title: t\ndescription: d\nrepository: r\n",
			check: func(t *testing.T, c *Changelog) {
				assert.Empty(t, c.Versions)
			},
		},
		"missing unreleased defaults to empty": {
			yaml: "title: t\ndescription: d\nrepository: r\n",
			check: func(t *testing.T, c *Changelog) {
				assert.True(t, c.Unreleased.IsEmpty())
			},
		},
		"null unreleased decodes as empty": {
			yaml: "title: t\ndescription: d\nrepository: r\nunreleased:\n",
			check: func(t *testing.T, c *Changelog) {
				assert.True(t, c.Unreleased.IsEmpty())
			},
		},
		"empty versions mapping": {
			yaml: "title: t\ndescription: d\nrepository: r\nversions: {}\n",
			check: func(t *testing.T, c *Changelog) {
				assert.Empty(t, c.Versions)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := FromYAML(tt.yaml)
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestFromYAML_StrictRejection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		yaml     string
		wantPath string
	}{
		"unknown root field": {
			yaml:     "title: t\ndescription: d\nrepository: r\nextra_field: true\n",
			wantPath: "extra_field",
		},
		"unknown version field": {
			yaml: "title: t\ndescription: d\nrepository: r\n" +
				"versions:\n  \"1.0.0\":\n    tag: v1\n    date: \"2025-01-01\"\n    author: me\n",
			wantPath: `versions["1.0.0"].author`,
		},
		"inline version field in keyed entry": {
			yaml: "title: t\ndescription: d\nrepository: r\n" +
				"versions:\n  \"1.0.0\":\n    version: \"1.0.0\"\n    tag: v1\n    date: \"2025-01-01\"\n",
			wantPath: `versions["1.0.0"].version`,
		},
		"unknown category under unreleased": {
			yaml:     "title: t\ndescription: d\nrepository: r\nunreleased:\n  improved:\n    - x\n",
			wantPath: "unreleased.improved",
		},
		"missing required title": {
			yaml:     "description: d\nrepository: r\n",
			wantPath: "title",
		},
		"missing required tag": {
			yaml: "title: t\ndescription: d\nrepository: r\n" +
				"versions:\n  \"1.0.0\":\n    date: \"2025-01-01\"\n",
			wantPath: `versions["1.0.0"].tag`,
		},
		"missing required date": {
			yaml: "title: t\ndescription: d\nrepository: r\n" +
				"versions:\n  \"1.0.0\":\n    tag: v1\n",
			wantPath: `versions["1.0.0"].date`,
		},
		"title wrong shape": {
			yaml:     "title: [a, b]\ndescription: d\nrepository: r\n",
			wantPath: "title",
		},
		"category entry wrong shape": {
			yaml:     "title: t\ndescription: d\nrepository: r\nunreleased:\n  added:\n    - ok\n    - [nested]\n",
			wantPath: "unreleased.added[1]",
		},
		"versions as sequence": {
			yaml:     "title: t\ndescription: d\nrepository: r\nversions:\n  - v1\n",
			wantPath: "versions",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := FromYAML(tt.yaml)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantPath, decodeErr.Path)
		})
	}
}

func TestFromYAML_DuplicateKey(t *testing.T) {
	t.Parallel()

	_, err := FromYAML("title: a\ntitle: b\ndescription: d\nrepository: r\n")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), "duplicate field")
}

func TestFromYAML_LenientDate(t *testing.T) {
	t.Parallel()

	// The date pattern lives in the exported schema only; decode
	// accepts any string.
	c, err := FromYAML("title: t\ndescription: d\nrepository: r\n" +
		"versions:\n  \"1.0.0\":\n    tag: v1\n    date: someday\n")
	require.NoError(t, err)
	assert.Equal(t, "someday", c.Versions[0].Date)
}

func TestFromJSON_Valid(t *testing.T) {
	t.Parallel()

	c, err := FromJSON(`{
  "title": "Changelog",
  "description": "d",
  "repository": "https://example.com/r",
  "unreleased": {},
  "versions": [
    {"version": "2.0.0", "tag": "v2.0.0", "date": "2025-06-01", "added": ["x"]},
    {"version": "1.0.0", "tag": "v1.0.0", "date": "2025-01-01", "yanked": "broken build"}
  ]
}`)
	require.NoError(t, err)

	// JSON uses the plain-array convention; element order is the
	// document order.
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, c.ListVersions())
	require.NotNil(t, c.Versions[1].Yanked)
	assert.Equal(t, "broken build", *c.Versions[1].Yanked)
}

func TestFromJSON_StrictRejection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		json     string
		wantPath string
	}{
		"unknown root field": {
			json:     `{"title":"t","description":"d","repository":"r","extra_field":true}`,
			wantPath: "extra_field",
		},
		"missing inline version name": {
			json:     `{"title":"t","description":"d","repository":"r","versions":[{"tag":"v1","date":"2025-01-01"}]}`,
			wantPath: "versions[0].version",
		},
		"versions as mapping": {
			json:     `{"title":"t","description":"d","repository":"r","versions":{"1.0.0":{}}}`,
			wantPath: "versions",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := FromJSON(tt.json)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantPath, decodeErr.Path)
		})
	}
}

func TestFromJSON_DuplicateKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"duplicate root field": `{
  "title": "t",
  "title": "shadowed",
  "description": "d",
  "repository": "r"
}`,
		"duplicate version field": `{
  "title": "t",
  "description": "d",
  "repository": "r",
  "versions": [
    {"version": "1.0.0", "tag": "v1", "tag": "v1-again", "date": "2025-01-01"}
  ]
}`,
		"duplicate category in unreleased": `{
  "title": "t",
  "description": "d",
  "repository": "r",
  "unreleased": {"added": ["x"], "added": ["y"]}
}`,
	}

	for name, doc := range tests {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := FromJSON(doc)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Contains(t, decodeErr.Error(), "duplicate field")
		})
	}
}

func TestFromJSON_Malformed(t *testing.T) {
	t.Parallel()

	_, err := FromJSON(`{"title":`)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestFromTOML_Valid(t *testing.T) {
	t.Parallel()

	c, err := FromTOML(`title = "Changelog"
description = "d"
repository = "https://example.com/r"

[unreleased]
changed = ["Reworked the parser"]

[versions."2.0.0"]
tag = "v2.0.0"
date = "2025-06-01"
added = ["Second release"]

[versions."1.0.0"]
tag = "v1.0.0"
date = "2025-01-01"
fixed = ["Startup crash"]
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reworked the parser"}, c.Unreleased.Changed)
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, c.ListVersions())
	assert.Equal(t, "v1.0.0", c.Versions[1].Tag)
}

func TestFromTOML_TableOrderIsDocumentOrder(t *testing.T) {
	t.Parallel()

	// Deliberately not in lexical order; the table order must win.
	c, err := FromTOML(`title = "t"
description = "d"
repository = "r"

[versions."0.9.0"]
tag = "v0.9.0"
date = "2024-06-01"

[versions."2.0.0"]
tag = "v2.0.0"
date = "2025-06-01"

[versions."1.0.0"]
tag = "v1.0.0"
date = "2025-01-01"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.9.0", "2.0.0", "1.0.0"}, c.ListVersions())
}

func TestFromTOML_StrictRejection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		toml     string
		wantPath string
	}{
		"unknown root field": {
			toml:     "title = \"t\"\ndescription = \"d\"\nrepository = \"r\"\nextra_field = true\n",
			wantPath: "extra_field",
		},
		"unknown version field": {
			toml: "title = \"t\"\ndescription = \"d\"\nrepository = \"r\"\n" +
				"[versions.\"1.0.0\"]\ntag = \"v1\"\ndate = \"2025-01-01\"\nauthor = \"me\"\n",
			wantPath: `versions["1.0.0"].author`,
		},
		"wrong shape repository": {
			toml:     "title = \"t\"\ndescription = \"d\"\nrepository = 7\n",
			wantPath: "repository",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := FromTOML(tt.toml)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantPath, decodeErr.Path)
		})
	}
}

func TestFromTOML_UnquotedDateReadsAsString(t *testing.T) {
	t.Parallel()

	c, err := FromTOML("title = \"t\"\ndescription = \"d\"\nrepository = \"r\"\n" +
		"[versions.\"1.0.0\"]\ntag = \"v1\"\ndate = 2025-01-01\n")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", c.Versions[0].Date)
}

func TestDecodeError_Unwrap(t *testing.T) {
	t.Parallel()

	_, err := FromYAML("title: t\ndescription: d\nrepository: r\nnope: 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnknownField))
}
