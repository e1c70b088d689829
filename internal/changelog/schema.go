package changelog

import "github.com/goccy/go-json"

// SchemaID is the canonical identifier of the changelog document
// schema.
const SchemaID = "https://changelog-md.github.io/1.0/changelog"

// DatePattern is the ISO calendar date constraint on Version.Date.
// It is enforced by the exported schema; decode stays lenient and only
// requires a string.
const DatePattern = `^\d{4}-[01]\d-[0-3]\d$`

// SchemaJSON returns the machine-readable JSON Schema describing the
// generic-tree (JSON) encoding of a changelog document, pretty-printed
// with a trailing newline.
func SchemaJSON() (string, error) {
	out, err := json.MarshalIndent(schemaDocument(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func schemaDocument() map[string]any {
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"$id":                  SchemaID,
		"title":                "Changelog",
		"description":          "A user-friendly format for writing changelogs in a verifiable and more git-friendly format",
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"title", "description", "repository"},
		"properties": map[string]any{
			"title": map[string]any{
				"description": "Your changelog's heading",
				"type":        "string",
			},
			"description": map[string]any{
				"description": "A description of your project. It's recommended to note whether you follow semantic versioning",
				"type":        "string",
			},
			"repository": map[string]any{
				"description": "Your source repository link",
				"type":        "string",
			},
			"unreleased": map[string]any{
				"description": "Currently unreleased changes",
				"$ref":        "#/definitions/Changes",
			},
			"versions": map[string]any{
				"description": "Releases, newest first",
				"type":        "array",
				"items":       map[string]any{"$ref": "#/definitions/Version"},
			},
		},
		"definitions": map[string]any{
			"Version": versionSchema(),
			"Changes": map[string]any{
				"description":          "Changes grouped by Keep a Changelog category",
				"type":                 "object",
				"additionalProperties": false,
				"properties":           categoryProperties(),
			},
		},
	}
}

// versionSchema describes one release. The change categories sit
// inline next to the version's own fields, matching the flattened
// serialized form.
func versionSchema() map[string]any {
	properties := map[string]any{
		"version": map[string]any{
			"description": "The version name",
			"type":        "string",
		},
		"tag": map[string]any{
			"description": "Git tag associated with this version",
			"type":        "string",
		},
		"date": map[string]any{
			"description": "Date the version was released as an ISO date string",
			"type":        "string",
			"pattern":     DatePattern,
		},
		"description": map[string]any{
			"description": "Optional Markdown description of this version",
			"type":        "string",
		},
		"yanked": map[string]any{
			"description": "If a version was yanked, the reason why",
			"type":        "string",
		},
	}
	for name, schema := range categoryProperties() {
		properties[name] = schema
	}

	return map[string]any{
		"description":          "A released version",
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"version", "tag", "date"},
		"properties":           properties,
	}
}

func categoryProperties() map[string]any {
	descriptions := map[string]string{
		"added":      "New additions made in this version",
		"changed":    "Changes to existing features",
		"deprecated": "Deprecations",
		"removed":    "Changes that removed a feature",
		"fixed":      "Fixes to existing features",
		"security":   "Security changes",
	}

	properties := map[string]any{}
	for _, name := range Categories() {
		properties[name] = map[string]any{
			"description": descriptions[name],
			"type":        "array",
			"items":       map[string]any{"type": "string"},
		}
	}
	return properties
}
