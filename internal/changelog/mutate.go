package changelog

import "fmt"

// Push appends one entry to the named category. The category name is
// matched case-sensitively against the Keep a Changelog set.
func (c *Changes) Push(category, text string) error {
	switch category {
	case "added":
		c.Added = append(c.Added, text)
	case "changed":
		c.Changed = append(c.Changed, text)
	case "deprecated":
		c.Deprecated = append(c.Deprecated, text)
	case "removed":
		c.Removed = append(c.Removed, text)
	case "fixed":
		c.Fixed = append(c.Fixed, text)
	case "security":
		c.Security = append(c.Security, text)
	default:
		return fmt.Errorf("unknown category %q (expected one of: added, changed, deprecated, removed, fixed, security)", category)
	}
	return nil
}

// Release moves the unreleased bucket into a new version inserted at
// the front of the history. The tag defaults to the version name and
// the description is dropped when empty. Fails with a
// *DuplicateVersionError, leaving the document unmodified, when the
// version name already exists.
func (c *Changelog) Release(version, tag, date, description string) error {
	for _, v := range c.Versions {
		if v.Version == version {
			return &DuplicateVersionError{Version: version}
		}
	}

	if tag == "" {
		tag = version
	}

	released := Version{
		Version: version,
		Tag:     tag,
		Date:    date,
		Changes: c.Unreleased,
	}
	if description != "" {
		released.Description = &description
	}

	c.Versions = append([]Version{released}, c.Versions...)
	c.Unreleased = Changes{}
	return nil
}

// Yank records a withdrawal reason on the version matching the given
// name. Fails with a *VersionNotFoundError, leaving the document
// unmodified, when no version matches.
func (c *Changelog) Yank(version, reason string) error {
	for i := range c.Versions {
		if c.Versions[i].Version == version {
			c.Versions[i].Yanked = &reason
			return nil
		}
	}
	return &VersionNotFoundError{
		Version:           version,
		AvailableVersions: c.ListVersions(),
	}
}
