package changelog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// tomlRoot carries the scalar fields and the unreleased table; version
// tables are composed separately so their document order survives.
type tomlRoot struct {
	Title       string      `toml:"title"`
	Description string      `toml:"description"`
	Repository  string      `toml:"repository"`
	Unreleased  tomlChanges `toml:"unreleased"`
}

// tomlVersionBody is the flattened body of one [versions."X"] table.
// The categories are spelled out rather than embedded: go-toml does
// not flatten embedded structs, so an embedded tomlChanges would be
// emitted as a nested table (or dropped) instead of inline lists.
type tomlVersionBody struct {
	Tag         string   `toml:"tag"`
	Date        string   `toml:"date"`
	Description *string  `toml:"description,omitempty"`
	Yanked      *string  `toml:"yanked,omitempty"`
	Added       []string `toml:"added,omitempty"`
	Changed     []string `toml:"changed,omitempty"`
	Deprecated  []string `toml:"deprecated,omitempty"`
	Removed     []string `toml:"removed,omitempty"`
	Fixed       []string `toml:"fixed,omitempty"`
	Security    []string `toml:"security,omitempty"`
}

type tomlChanges struct {
	Added      []string `toml:"added,omitempty"`
	Changed    []string `toml:"changed,omitempty"`
	Deprecated []string `toml:"deprecated,omitempty"`
	Removed    []string `toml:"removed,omitempty"`
	Fixed      []string `toml:"fixed,omitempty"`
	Security   []string `toml:"security,omitempty"`
}

// FromTOML parses a changelog from its TOML encoding. Like YAML, the
// versions field uses the keyed-list convention; the order of the
// [versions."X"] tables in the document becomes the sequence order.
func FromTOML(text string) (*Changelog, error) {
	data := []byte(text)

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	root := tomlToNode(raw, tomlVersionOrder(data))
	return bindChangelog(root, true)
}

// ToTOML serializes a changelog into a stable TOML layout: the scalar
// header and the [unreleased] table first, then one [versions."X"]
// table per release in document order. The table headers are written
// directly; defining a sub-table implicitly creates the versions
// parent, so [versions] itself never appears and each version name
// occurs in exactly one header.
func (c *Changelog) ToTOML() (string, error) {
	head, err := toml.Marshal(tomlRoot{
		Title:       c.Title,
		Description: c.Description,
		Repository:  c.Repository,
		Unreleased:  tomlChangesOf(c.Unreleased),
	})
	if err != nil {
		return "", fmt.Errorf("encoding TOML: %w", err)
	}

	var b strings.Builder
	b.Write(head)

	for _, v := range c.Versions {
		body, err := toml.Marshal(tomlVersionBody{
			Tag:         v.Tag,
			Date:        v.Date,
			Description: v.Description,
			Yanked:      v.Yanked,
			Added:       v.Changes.Added,
			Changed:     v.Changes.Changed,
			Deprecated:  v.Changes.Deprecated,
			Removed:     v.Changes.Removed,
			Fixed:       v.Changes.Fixed,
			Security:    v.Changes.Security,
		})
		if err != nil {
			return "", fmt.Errorf("encoding TOML for version %s: %w", v.Version, err)
		}
		b.WriteString("\n[versions.")
		b.WriteString(tomlKey(v.Version))
		b.WriteString("]\n")
		b.Write(body)
	}

	return b.String(), nil
}

// tomlKey renders a version name as a TOML table key, quoting it
// unless it is a bare key.
func tomlKey(name string) string {
	if name == "" {
		return `""`
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return strconv.Quote(name)
		}
	}
	return name
}

func tomlChangesOf(c Changes) tomlChanges {
	return tomlChanges{
		Added:      c.Added,
		Changed:    c.Changed,
		Deprecated: c.Deprecated,
		Removed:    c.Removed,
		Fixed:      c.Fixed,
		Security:   c.Security,
	}
}

// tomlVersionOrder scans the raw document for [versions."X"] table
// headers and returns the version names in document order. Unmarshal
// has already validated the syntax; a scan error just means no order
// information beyond what was collected.
func tomlVersionOrder(data []byte) []string {
	var order []string
	p := &unstable.Parser{}
	p.Reset(data)

	for p.NextExpression() {
		e := p.Expression()
		if e.Kind != unstable.Table {
			continue
		}
		var segments []string
		it := e.Key()
		for it.Next() {
			segments = append(segments, string(it.Node().Data))
		}
		if len(segments) == 2 && segments[0] == "versions" {
			order = append(order, segments[1])
		}
	}
	return order
}

// tomlToNode normalizes the decoded document. Only the root-level
// versions mapping carries meaningful key order; everywhere else keys
// are visited sorted for deterministic error reporting.
func tomlToNode(raw map[string]any, versionOrder []string) *node {
	root := newMapping()
	for _, key := range sortedKeys(raw) {
		if key == "versions" {
			if versions, ok := raw[key].(map[string]any); ok {
				root.set(key, tomlVersionsNode(versions, versionOrder))
				continue
			}
		}
		root.set(key, tomlValueNode(raw[key]))
	}
	return root
}

func tomlVersionsNode(versions map[string]any, order []string) *node {
	m := newMapping()
	for _, name := range order {
		if body, ok := versions[name]; ok {
			if _, dup := m.fields[name]; !dup {
				m.set(name, tomlValueNode(body))
			}
		}
	}
	// Inline-table entries never show up in the header scan; append
	// any stragglers in sorted order.
	for _, name := range sortedKeys(versions) {
		if _, present := m.fields[name]; !present {
			m.set(name, tomlValueNode(versions[name]))
		}
	}
	return m
}

func tomlValueNode(v any) *node {
	switch val := v.(type) {
	case map[string]any:
		m := newMapping()
		for _, key := range sortedKeys(val) {
			m.set(key, tomlValueNode(val[key]))
		}
		return m
	case []any:
		s := &node{kind: sequenceNode}
		for _, item := range val {
			s.items = append(s.items, tomlValueNode(item))
		}
		return s
	case string:
		return &node{kind: stringNode, value: val}
	case bool:
		return &node{kind: boolNode, value: strconv.FormatBool(val)}
	case int64:
		return &node{kind: numberNode, value: strconv.FormatInt(val, 10)}
	case float64:
		return &node{kind: numberNode, value: strconv.FormatFloat(val, 'g', -1, 64)}
	case time.Time:
		return &node{kind: stringNode, value: val.Format(time.RFC3339)}
	case toml.LocalDate:
		// An unquoted date = 2025-01-01 still reads back as a string.
		return &node{kind: stringNode, value: val.String()}
	case toml.LocalDateTime:
		return &node{kind: stringNode, value: val.String()}
	case toml.LocalTime:
		return &node{kind: stringNode, value: val.String()}
	default:
		return &node{kind: nullNode}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
