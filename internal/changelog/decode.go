package changelog

import (
	"errors"
	"fmt"
)

// The three codecs normalize their input into this small ordered node
// tree before binding. Keeping one binder behind all formats
// guarantees identical strictness and identical error paths whether
// the document came from YAML, TOML, or JSON.

type nodeKind int

const (
	mappingNode nodeKind = iota
	sequenceNode
	stringNode
	boolNode
	numberNode
	nullNode
)

func (k nodeKind) String() string {
	switch k {
	case mappingNode:
		return "mapping"
	case sequenceNode:
		return "sequence"
	case stringNode:
		return "string"
	case boolNode:
		return "boolean"
	case numberNode:
		return "number"
	case nullNode:
		return "null"
	default:
		return "unknown"
	}
}

// node is one value in the normalized document tree. Mappings keep
// their key order so the keyed version list round-trips byte-stably.
type node struct {
	kind   nodeKind
	keys   []string         // mappingNode: keys in document order
	fields map[string]*node // mappingNode
	items  []*node          // sequenceNode
	value  string           // scalar literal
}

func newMapping() *node {
	return &node{kind: mappingNode, fields: map[string]*node{}}
}

func (n *node) set(key string, child *node) {
	n.keys = append(n.keys, key)
	n.fields[key] = child
}

var errUnknownField = errors.New("unknown field")

// bindChangelog binds a normalized document to the data model.
// keyedVersions selects the keyed-list convention for the versions
// field (YAML/TOML) over the plain-array convention (JSON).
func bindChangelog(root *node, keyedVersions bool) (*Changelog, error) {
	path := &fieldPath{}
	if root.kind != mappingNode {
		return nil, path.errorf("expected a mapping at the document root, got %s", root.kind)
	}

	c := &Changelog{Versions: []Version{}}
	seen := map[string]bool{}

	for _, key := range root.keys {
		child := root.fields[key]
		path.pushField(key)

		var err error
		switch key {
		case "title":
			c.Title, err = bindString(path, child)
		case "description":
			c.Description, err = bindString(path, child)
		case "repository":
			c.Repository, err = bindString(path, child)
		case "unreleased":
			c.Unreleased, err = bindChanges(path, child)
		case "versions":
			if keyedVersions {
				c.Versions, err = bindKeyedVersions(path, child)
			} else {
				c.Versions, err = bindVersionArray(path, child)
			}
		default:
			err = path.wrap(errUnknownField)
		}
		if err != nil {
			return nil, err
		}

		seen[key] = true
		path.pop()
	}

	for _, required := range []string{"title", "description", "repository"} {
		if !seen[required] {
			return nil, missingField(path, required)
		}
	}

	return c, nil
}

func missingField(path *fieldPath, name string) *DecodeError {
	path.pushField(name)
	defer path.pop()
	return path.errorf("missing required field")
}

// bindKeyedVersions reads the keyed-list encoding: a mapping whose
// keys are version names and whose values carry the remaining fields.
// The mapping's document order becomes the sequence order.
func bindKeyedVersions(path *fieldPath, n *node) ([]Version, error) {
	if n.kind != mappingNode {
		return nil, path.errorf("expected a mapping of versions, got %s", n.kind)
	}

	versions := make([]Version, 0, len(n.keys))
	for _, name := range n.keys {
		path.pushKey(name)
		v, err := bindVersion(path, n.fields[name], name)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
		path.pop()
	}
	return versions, nil
}

// bindVersionArray reads the plain-array encoding used by JSON, where
// each element carries its own version field inline.
func bindVersionArray(path *fieldPath, n *node) ([]Version, error) {
	if n.kind != sequenceNode {
		return nil, path.errorf("expected an array of versions, got %s", n.kind)
	}

	versions := make([]Version, 0, len(n.items))
	for i, item := range n.items {
		path.pushIndex(i)
		v, err := bindVersion(path, item, "")
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
		path.pop()
	}
	return versions, nil
}

// bindVersion binds one version body. When name is non-empty it was
// the mapping key and an inline version field is rejected; otherwise
// the body must carry one.
func bindVersion(path *fieldPath, n *node, name string) (Version, error) {
	v := Version{Version: name}
	if n.kind != mappingNode {
		return v, path.errorf("expected a mapping, got %s", n.kind)
	}

	seen := map[string]bool{}
	for _, key := range n.keys {
		child := n.fields[key]
		path.pushField(key)

		var err error
		switch key {
		case "version":
			if name != "" {
				// The keyed encodings carry the name as the mapping key.
				err = path.wrap(errUnknownField)
			} else {
				v.Version, err = bindString(path, child)
			}
		case "tag":
			v.Tag, err = bindString(path, child)
		case "date":
			v.Date, err = bindString(path, child)
		case "description":
			v.Description, err = bindOptionalString(path, child)
		case "yanked":
			v.Yanked, err = bindOptionalString(path, child)
		default:
			var entries []string
			entries, err = bindCategory(path, key, child)
			if err == nil {
				err = v.Changes.assign(key, entries)
			}
		}
		if err != nil {
			return v, err
		}

		seen[key] = true
		path.pop()
	}

	required := []string{"tag", "date"}
	if name == "" {
		required = append([]string{"version"}, required...)
	}
	for _, field := range required {
		if !seen[field] {
			return v, missingField(path, field)
		}
	}

	return v, nil
}

// bindChanges binds a standalone change bucket (the unreleased field).
func bindChanges(path *fieldPath, n *node) (Changes, error) {
	var c Changes
	if n.kind == nullNode {
		// An empty `unreleased:` key decodes as an empty bucket.
		return c, nil
	}
	if n.kind != mappingNode {
		return c, path.errorf("expected a mapping of change categories, got %s", n.kind)
	}

	for _, key := range n.keys {
		path.pushField(key)
		entries, err := bindCategory(path, key, n.fields[key])
		if err == nil {
			err = c.assign(key, entries)
		}
		if err != nil {
			return c, err
		}
		path.pop()
	}
	return c, nil
}

// bindCategory binds one category list, rejecting unknown category
// names so typos never silently drop entries.
func bindCategory(path *fieldPath, name string, n *node) ([]string, error) {
	if !isCategory(name) {
		return nil, path.wrap(errUnknownField)
	}
	if n.kind != sequenceNode {
		return nil, path.errorf("expected a list of entries, got %s", n.kind)
	}

	entries := make([]string, 0, len(n.items))
	for i, item := range n.items {
		path.pushIndex(i)
		s, err := bindString(path, item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, s)
		path.pop()
	}
	return entries, nil
}

func bindString(path *fieldPath, n *node) (string, error) {
	if n.kind != stringNode {
		return "", path.errorf("expected a string, got %s", n.kind)
	}
	return n.value, nil
}

func bindOptionalString(path *fieldPath, n *node) (*string, error) {
	if n.kind == nullNode {
		return nil, nil
	}
	s, err := bindString(path, n)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func isCategory(name string) bool {
	switch name {
	case "added", "changed", "deprecated", "removed", "fixed", "security":
		return true
	}
	return false
}

// assign stores a bound category list on the matching field.
func (c *Changes) assign(category string, entries []string) error {
	switch category {
	case "added":
		c.Added = entries
	case "changed":
		c.Changed = entries
	case "deprecated":
		c.Deprecated = entries
	case "removed":
		c.Removed = entries
	case "fixed":
		c.Fixed = entries
	case "security":
		c.Security = entries
	default:
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}
