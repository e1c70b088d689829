package changelog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a changelog from its YAML encoding. The versions
// field uses the keyed-list convention: a mapping from version name to
// version body, in document order.
func FromYAML(text string) (*Changelog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &DecodeError{Cause: fmt.Errorf("empty document")}
	}

	root, err := yamlToNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	return bindChangelog(root, true)
}

// ToYAML serializes a changelog into its YAML encoding with two-space
// indentation, preserving version order.
func (c *Changelog) ToYAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.yamlNode()); err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	return buf.String(), nil
}

// yamlToNode normalizes a parsed yaml.Node into the shared document
// tree, rejecting duplicate mapping keys.
func yamlToNode(n *yaml.Node) (*node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlToNode(n.Alias)

	case yaml.MappingNode:
		m := newMapping()
		for i := 0; i < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			key := keyNode.Value
			if _, dup := m.fields[key]; dup {
				return nil, &DecodeError{
					Cause: fmt.Errorf("duplicate field %q at line %d", key, keyNode.Line),
				}
			}
			child, err := yamlToNode(valNode)
			if err != nil {
				return nil, err
			}
			m.set(key, child)
		}
		return m, nil

	case yaml.SequenceNode:
		s := &node{kind: sequenceNode}
		for _, item := range n.Content {
			child, err := yamlToNode(item)
			if err != nil {
				return nil, err
			}
			s.items = append(s.items, child)
		}
		return s, nil

	case yaml.ScalarNode:
		return yamlScalar(n), nil

	default:
		return nil, &DecodeError{
			Cause: fmt.Errorf("unsupported YAML node at line %d", n.Line),
		}
	}
}

func yamlScalar(n *yaml.Node) *node {
	switch n.Tag {
	case "!!null":
		return &node{kind: nullNode}
	case "!!bool":
		return &node{kind: boolNode, value: n.Value}
	case "!!int", "!!float":
		return &node{kind: numberNode, value: n.Value}
	default:
		// !!str plus resolver specials like !!timestamp keep their
		// literal text; version names and dates stay strings.
		return &node{kind: stringNode, value: n.Value}
	}
}

// yamlNode builds the order-preserving yaml.Node tree mirroring the
// on-disk layout.
func (c *Changelog) yamlNode() *yaml.Node {
	root := yamlMapping()
	yamlPut(root, "title", yamlString(c.Title))
	yamlPut(root, "description", yamlString(c.Description))
	yamlPut(root, "repository", yamlString(c.Repository))
	yamlPut(root, "unreleased", c.Unreleased.yamlNode())

	versions := yamlMapping()
	for _, v := range c.Versions {
		yamlPut(versions, v.Version, v.yamlNode())
	}
	yamlPut(root, "versions", versions)
	return root
}

func (v *Version) yamlNode() *yaml.Node {
	body := yamlMapping()
	yamlPut(body, "tag", yamlString(v.Tag))
	yamlPut(body, "date", yamlQuoted(v.Date))
	if v.Description != nil {
		yamlPut(body, "description", yamlString(*v.Description))
	}
	if v.Yanked != nil {
		yamlPut(body, "yanked", yamlString(*v.Yanked))
	}
	v.Changes.appendYAML(body)
	return body
}

func (c *Changes) yamlNode() *yaml.Node {
	m := yamlMapping()
	c.appendYAML(m)
	return m
}

// appendYAML writes the non-empty category lists onto a mapping, so a
// version's changes sit flattened next to its own fields.
func (c *Changes) appendYAML(m *yaml.Node) {
	for _, cat := range c.byCategory() {
		if len(cat.Entries) == 0 {
			continue
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, entry := range cat.Entries {
			seq.Content = append(seq.Content, yamlString(entry))
		}
		yamlPut(m, cat.Name, seq)
	}
}

func yamlMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func yamlPut(m *yaml.Node, key string, value *yaml.Node) {
	keyNode := yamlString(key)
	if needsQuoting(key) {
		keyNode = yamlQuoted(key)
	}
	m.Content = append(m.Content, keyNode, value)
}

func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		n.Style = yaml.LiteralStyle
	}
	return n
}

func yamlQuoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

// needsQuoting reports whether a mapping key would reparse as
// something other than a plain string. Version names like "1.0" or
// dates would otherwise resolve as numbers or timestamps.
func needsQuoting(key string) bool {
	if key == "" {
		return true
	}
	var probe yaml.Node
	if err := yaml.Unmarshal([]byte(key), &probe); err != nil {
		return true
	}
	if len(probe.Content) != 1 {
		return true
	}
	scalar := probe.Content[0]
	return scalar.Kind != yaml.ScalarNode || scalar.Tag != "!!str"
}
