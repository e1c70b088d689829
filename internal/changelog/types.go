package changelog

import "slices"

// Changelog is the root of a changelog document: project metadata, the
// pending (unreleased) change bucket, and the ordered release history.
// Versions are kept newest first by convention; their order in the
// document is preserved on every round-trip and drives link generation.
type Changelog struct {
	Title       string
	Description string
	Repository  string
	Unreleased  Changes
	Versions    []Version
}

// Version is a single released entry in the changelog.
// In the YAML and TOML encodings the Version field doubles as the key
// of the versions mapping; in JSON it is an inline field.
// The Date field is an ISO calendar date (YYYY-MM-DD). The pattern is
// enforced in the exported schema, not at decode time.
type Version struct {
	Version     string
	Tag         string
	Date        string
	Description *string
	Yanked      *string
	Changes     Changes
}

// Changes groups change entries by Keep a Changelog category.
// All categories are optional; empty categories are omitted from the
// serialized form and from rendered Markdown.
// Categories follow the Keep a Changelog specification:
// https://keepachangelog.com/en/1.1.0/
type Changes struct {
	Added      []string
	Changed    []string
	Deprecated []string
	Removed    []string
	Fixed      []string
	Security   []string
}

// Entry is a flattened view of a single change entry, used for
// querying and terminal display where the version and category context
// is needed alongside the text.
type Entry struct {
	Text     string
	Category string
	Version  string
}

// Categories returns the Keep a Changelog category names in their
// standard rendering order.
func Categories() []string {
	return []string{"added", "changed", "deprecated", "removed", "fixed", "security"}
}

// byCategory returns the category lists in rendering order, paired
// with their lowercase names.
func (c *Changes) byCategory() []struct {
	Name    string
	Entries []string
} {
	return []struct {
		Name    string
		Entries []string
	}{
		{"added", c.Added},
		{"changed", c.Changed},
		{"deprecated", c.Deprecated},
		{"removed", c.Removed},
		{"fixed", c.Fixed},
		{"security", c.Security},
	}
}

// IsEmpty returns true if no category has any entries.
func (c Changes) IsEmpty() bool {
	return len(c.Added) == 0 &&
		len(c.Changed) == 0 &&
		len(c.Deprecated) == 0 &&
		len(c.Removed) == 0 &&
		len(c.Fixed) == 0 &&
		len(c.Security) == 0
}

// Count returns the total number of entries across all categories.
func (c Changes) Count() int {
	return len(c.Added) +
		len(c.Changed) +
		len(c.Deprecated) +
		len(c.Removed) +
		len(c.Fixed) +
		len(c.Security)
}

// Equal reports element-wise equality of all six category lists.
func (c Changes) Equal(other Changes) bool {
	return slices.Equal(c.Added, other.Added) &&
		slices.Equal(c.Changed, other.Changed) &&
		slices.Equal(c.Deprecated, other.Deprecated) &&
		slices.Equal(c.Removed, other.Removed) &&
		slices.Equal(c.Fixed, other.Fixed) &&
		slices.Equal(c.Security, other.Security)
}

// Equal reports structural equality of two versions, including the
// presence and value of the optional description and yanked fields.
func (v Version) Equal(other Version) bool {
	return v.Version == other.Version &&
		v.Tag == other.Tag &&
		v.Date == other.Date &&
		equalOptional(v.Description, other.Description) &&
		equalOptional(v.Yanked, other.Yanked) &&
		v.Changes.Equal(other.Changes)
}

// Equal reports structural equality of two changelogs.
func (c *Changelog) Equal(other *Changelog) bool {
	if c.Title != other.Title ||
		c.Description != other.Description ||
		c.Repository != other.Repository ||
		!c.Unreleased.Equal(other.Unreleased) {
		return false
	}
	return slices.EqualFunc(c.Versions, other.Versions, Version.Equal)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Entries returns a flattened list of all entries in this version, in
// category rendering order.
func (v Version) Entries() []Entry {
	return flattenChanges(v.Changes, v.Version)
}

func flattenChanges(c Changes, version string) []Entry {
	entries := make([]Entry, 0, c.Count())
	for _, cat := range c.byCategory() {
		for _, text := range cat.Entries {
			entries = append(entries, Entry{Text: text, Category: cat.Name, Version: version})
		}
	}
	return entries
}
