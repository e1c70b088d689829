package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

var errTrailingData = errors.New("unexpected data after JSON document")

// jsonChangelog mirrors Changelog for the generic-tree encoding. JSON
// is the one format where versions serialize as a plain array with the
// version name inline rather than as a keyed mapping.
type jsonChangelog struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Repository  string        `json:"repository"`
	Unreleased  jsonChanges   `json:"unreleased"`
	Versions    []jsonVersion `json:"versions"`
}

type jsonVersion struct {
	Version     string  `json:"version"`
	Tag         string  `json:"tag"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	Yanked      *string `json:"yanked,omitempty"`
	jsonChanges
}

type jsonChanges struct {
	Added      []string `json:"added,omitempty"`
	Changed    []string `json:"changed,omitempty"`
	Deprecated []string `json:"deprecated,omitempty"`
	Removed    []string `json:"removed,omitempty"`
	Fixed      []string `json:"fixed,omitempty"`
	Security   []string `json:"security,omitempty"`
}

// FromJSON parses a changelog from its JSON encoding. Strictness and
// error paths match the other formats: the parsed tree is normalized
// and run through the shared binder. Duplicate object keys are
// rejected like the YAML codec rejects duplicate mapping keys.
func FromJSON(text string) (*Changelog, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	if dec.More() {
		return nil, &DecodeError{Cause: errTrailingData}
	}
	if err := jsonDuplicateKeys([]byte(text)); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return bindChangelog(jsonToNode(raw), false)
}

// jsonDuplicateKeys walks the token stream checking that no object
// repeats a key. Decoding into map[string]any is silently last-wins,
// so the check needs its own pass.
func jsonDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	return jsonCheckValue(dec, tok)
}

func jsonCheckValue(dec *json.Decoder, tok json.Token) error {
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := map[string]bool{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if seen[key] {
				return fmt.Errorf("duplicate field %q", key)
			}
			seen[key] = true

			valTok, err := dec.Token()
			if err != nil {
				return err
			}
			if err := jsonCheckValue(dec, valTok); err != nil {
				return err
			}
		}
		_, err := dec.Token()
		return err
	case '[':
		for dec.More() {
			itemTok, err := dec.Token()
			if err != nil {
				return err
			}
			if err := jsonCheckValue(dec, itemTok); err != nil {
				return err
			}
		}
		_, err := dec.Token()
		return err
	}
	return nil
}

// ToJSON serializes a changelog into pretty-printed JSON with a
// trailing newline.
func (c *Changelog) ToJSON() (string, error) {
	wire := jsonChangelog{
		Title:       c.Title,
		Description: c.Description,
		Repository:  c.Repository,
		Unreleased:  jsonChangesOf(c.Unreleased),
		Versions:    make([]jsonVersion, 0, len(c.Versions)),
	}
	for _, v := range c.Versions {
		wire.Versions = append(wire.Versions, jsonVersion{
			Version:     v.Version,
			Tag:         v.Tag,
			Date:        v.Date,
			Description: v.Description,
			Yanked:      v.Yanked,
			jsonChanges: jsonChangesOf(v.Changes),
		})
	}

	out, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func jsonChangesOf(c Changes) jsonChanges {
	return jsonChanges{
		Added:      c.Added,
		Changed:    c.Changed,
		Deprecated: c.Deprecated,
		Removed:    c.Removed,
		Fixed:      c.Fixed,
		Security:   c.Security,
	}
}

// jsonToNode normalizes a decoded JSON value into the shared document
// tree. Object keys are visited in sorted order: JSON key order is
// not semantically meaningful here (versions are an array), sorting
// just keeps error reporting deterministic.
func jsonToNode(v any) *node {
	switch val := v.(type) {
	case map[string]any:
		m := newMapping()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.set(k, jsonToNode(val[k]))
		}
		return m
	case []any:
		s := &node{kind: sequenceNode}
		for _, item := range val {
			s.items = append(s.items, jsonToNode(item))
		}
		return s
	case string:
		return &node{kind: stringNode, value: val}
	case bool:
		return &node{kind: boolNode}
	case json.Number:
		return &node{kind: numberNode, value: val.String()}
	case nil:
		return &node{kind: nullNode}
	default:
		return &node{kind: nullNode}
	}
}
