package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported changelog source encodings.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatYAML, FormatTOML, FormatJSON}
}

// Extension returns the canonical file extension for the format,
// without the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return ""
	}
}

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected yaml, toml, or json)", name)
	}
}

// FormatFromPath infers the format from a file path's extension.
// Returns a *FormatError when the extension is missing or unknown.
func FormatFromPath(path string) (Format, error) {
	switch extensionOf(path) {
	case "yml", "yaml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &FormatError{Path: path}
	}
}

func extensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse decodes a changelog document in the given format.
func Parse(text string, format Format) (*Changelog, error) {
	switch format {
	case FormatYAML:
		return FromYAML(text)
	case FormatTOML:
		return FromTOML(text)
	case FormatJSON:
		return FromJSON(text)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// RenderAs encodes a changelog document in the given format.
func (c *Changelog) RenderAs(format Format) (string, error) {
	switch format {
	case FormatYAML:
		return c.ToYAML()
	case FormatTOML:
		return c.ToTOML()
	case FormatJSON:
		return c.ToJSON()
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// Load reads a changelog source file, inferring its format from the
// file extension.
func Load(path string) (*Changelog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog file: %w", err)
	}

	c, err := Parse(string(data), format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Save encodes the changelog in the format implied by the path's
// extension and writes it, replacing any previous content.
func (c *Changelog) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	text, err := c.RenderAs(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing changelog file: %w", err)
	}
	return nil
}

// DetectSource looks for a changelog source file (CHANGELOG.yml,
// .yaml, .toml, or .json, case-insensitive stem) in the given
// directory. Returns an empty string when none is found.
func DetectSource(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if !strings.EqualFold(stem, "CHANGELOG") {
			continue
		}
		if _, err := FormatFromPath(name); err == nil {
			return filepath.Join(dir, name)
		}
	}
	return ""
}
