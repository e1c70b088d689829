package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path    string
		want    Format
		wantErr bool
	}{
		"yml":             {path: "CHANGELOG.yml", want: FormatYAML},
		"yaml":            {path: "CHANGELOG.yaml", want: FormatYAML},
		"uppercase yaml":  {path: "CHANGELOG.YAML", want: FormatYAML},
		"toml":            {path: "CHANGELOG.toml", want: FormatTOML},
		"json":            {path: "changelog.json", want: FormatJSON},
		"nested path":     {path: "docs/CHANGELOG.yml", want: FormatYAML},
		"no extension":    {path: "CHANGELOG", wantErr: true},
		"unknown ext":     {path: "CHANGELOG.xml", wantErr: true},
		"markdown output": {path: "CHANGELOG.md", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"yaml", "yml", "YAML"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, f)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestLoadAndSave(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := roundTripFixtures()["several versions with optional fields"]

	for _, format := range Formats() {
		path := filepath.Join(dir, "CHANGELOG."+format.Extension())
		require.NoError(t, doc.Save(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.True(t, doc.Equal(loaded), "save/load through %s changed the document", format)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "CHANGELOG.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UnknownExtension(t *testing.T) {
	t.Parallel()

	var formatErr *FormatError
	_, err := Load("CHANGELOG.txt")
	require.ErrorAs(t, err, &formatErr)
}

func TestDetectSource(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files []string
		want  string
	}{
		"yml source": {
			files: []string{"CHANGELOG.yml", "README.md"},
			want:  "CHANGELOG.yml",
		},
		"lowercase stem": {
			files: []string{"changelog.toml"},
			want:  "changelog.toml",
		},
		"markdown is not a source": {
			files: []string{"CHANGELOG.md"},
			want:  "",
		},
		"nothing": {
			files: []string{"README.md"},
			want:  "",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644))
			}

			got := DetectSource(dir)
			if tt.want == "" {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, filepath.Join(dir, tt.want), got)
			}
		})
	}
}
