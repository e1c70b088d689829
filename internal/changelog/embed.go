package changelog

import (
	_ "embed"
	"fmt"
)

//go:embed changelog.yml
var embeddedChangelog []byte

// Embedded returns the raw embedded changelog.yml content. This is
// changelog-md's own changelog as of the build.
func Embedded() []byte {
	return embeddedChangelog
}

// LoadEmbedded parses the embedded changelog.yml. This lets the CLI
// show its own release history without file system access.
func LoadEmbedded() (*Changelog, error) {
	if len(embeddedChangelog) == 0 {
		return nil, fmt.Errorf("embedded changelog is empty (binary may have been built without embedded content)")
	}

	c, err := FromYAML(string(embeddedChangelog))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded changelog: %w", err)
	}
	return c, nil
}
