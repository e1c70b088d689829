package changelog

import (
	"fmt"
	"io"
	"strings"
)

// ToMarkdown renders the changelog as its canonical Markdown document.
// The output is byte-stable: the same document always renders to the
// same string.
func (c *Changelog) ToMarkdown() string {
	var b strings.Builder
	// strings.Builder writes never fail.
	_ = RenderMarkdown(c, &b)
	return b.String()
}

// RenderMarkdown writes the canonical Markdown document to w: the
// title heading, description, the unreleased section when non-empty,
// one section per version in document order, and the generated
// Revisions section of comparison links.
func RenderMarkdown(c *Changelog, w io.Writer) error {
	if err := renderHeader(c, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	if !c.Unreleased.IsEmpty() {
		if _, err := fmt.Fprintf(w, "## [Unreleased]\n%s\n", changeBlocks(&c.Unreleased)); err != nil {
			return err
		}
	}

	for i := range c.Versions {
		if err := renderVersion(&c.Versions[i], w); err != nil {
			return fmt.Errorf("rendering version %s: %w", c.Versions[i].Version, err)
		}
	}

	if err := renderRevisions(c, w); err != nil {
		return fmt.Errorf("rendering revisions: %w", err)
	}
	return nil
}

// renderHeader writes the title and description. Exactly one blank
// line separates the description from the next section, whether or
// not the source description carried a trailing newline.
func renderHeader(c *Changelog, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n%s\n", c.Title, c.Description); err != nil {
		return err
	}
	if !strings.HasSuffix(c.Description, "\n") {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// renderVersion writes one release section: heading with date (and
// yank marker), optional trimmed description, then the change blocks.
func renderVersion(v *Version, w io.Writer) error {
	heading := fmt.Sprintf("## %s - %s", v.Version, v.Date)
	if v.Yanked != nil {
		heading += fmt.Sprintf(" [YANKED] %s", *v.Yanked)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
		return err
	}

	if v.Description != nil {
		if _, err := fmt.Fprintf(w, "%s\n", strings.TrimSpace(*v.Description)); err != nil {
			return err
		}
	}

	if !v.Changes.IsEmpty() {
		if _, err := fmt.Fprintf(w, "%s\n", changeBlocks(&v.Changes)); err != nil {
			return err
		}
	}
	return nil
}

// changeBlocks renders the non-empty category blocks in the fixed
// Added/Changed/Deprecated/Removed/Fixed/Security order. Each block is
// introduced by a blank line so blocks chain cleanly after a heading.
func changeBlocks(c *Changes) string {
	var b strings.Builder
	for _, cat := range c.byCategory() {
		if len(cat.Entries) == 0 {
			continue
		}
		b.WriteString("\n### ")
		b.WriteString(strings.ToUpper(cat.Name[:1]) + cat.Name[1:])
		b.WriteString("\n\n")
		for _, entry := range cat.Entries {
			b.WriteString("- ")
			b.WriteString(entry)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRevisions writes the comparison-link section, newest first.
// The unreleased line compares the latest tag to HEAD, each release
// spans from the next-older tag to its own, and the oldest release
// links to its commit history since it has no predecessor.
func renderRevisions(c *Changelog, w io.Writer) error {
	if _, err := io.WriteString(w, "\n# Revisions\n\n"); err != nil {
		return err
	}

	if len(c.Versions) == 0 {
		_, err := fmt.Fprintf(w, "- [unreleased] <%s/commits/>\n", c.Repository)
		return err
	}

	if _, err := fmt.Fprintf(w, "- [unreleased] <%s/compare/%s...HEAD>\n",
		c.Repository, c.Versions[0].Tag); err != nil {
		return err
	}

	for i := 0; i < len(c.Versions)-1; i++ {
		if _, err := fmt.Fprintf(w, "- [%s] <%s/compare/%s..%s>\n",
			c.Versions[i].Version, c.Repository,
			c.Versions[i+1].Tag, c.Versions[i].Tag); err != nil {
			return err
		}
	}

	last := c.Versions[len(c.Versions)-1]
	_, err := fmt.Fprintf(w, "- [%s] <%s/commits/%s>\n",
		last.Version, c.Repository, last.Tag)
	return err
}
