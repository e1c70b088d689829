package changelog

// UnreleasedName is the pseudo-version identifying the unreleased
// bucket in queries and flattened entries.
const UnreleasedName = "unreleased"

// GetVersion retrieves a released version by exact name match.
// The special name "unreleased" resolves to the pending bucket.
// Returns a *VersionNotFoundError if the version doesn't exist.
func (c *Changelog) GetVersion(version string) (*Version, error) {
	if version == UnreleasedName {
		return &Version{Version: UnreleasedName, Changes: c.Unreleased}, nil
	}

	for i := range c.Versions {
		if c.Versions[i].Version == version {
			return &c.Versions[i], nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: c.ListVersions(),
	}
}

// ListVersions returns all released version names in document order
// (newest first by convention).
func (c *Changelog) ListVersions() []string {
	versions := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		versions[i] = v.Version
	}
	return versions
}

// Latest returns the most recent released version, or nil when
// nothing has been released yet.
func (c *Changelog) Latest() *Version {
	if len(c.Versions) == 0 {
		return nil
	}
	return &c.Versions[0]
}

// AllEntries returns every entry in the document flattened, the
// unreleased bucket first, then each version newest first. Entries
// within a version follow category rendering order.
func (c *Changelog) AllEntries() []Entry {
	var entries []Entry
	if !c.Unreleased.IsEmpty() {
		entries = append(entries, flattenChanges(c.Unreleased, UnreleasedName)...)
	}
	for _, v := range c.Versions {
		entries = append(entries, v.Entries()...)
	}
	return entries
}

// GetLastN returns the N most recent entries across the document.
// If N exceeds the total number of entries, all entries are returned.
func (c *Changelog) GetLastN(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}

	entries := c.AllEntries()
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// EntryCount returns the total number of entries in the document,
// including the unreleased bucket.
func (c *Changelog) EntryCount() int {
	count := c.Unreleased.Count()
	for _, v := range c.Versions {
		count += v.Changes.Count()
	}
	return count
}
