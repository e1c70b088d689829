// Package changelog implements the changelog-md document model and its
// codecs.
//
// This package implements:
//   - The Changelog/Version/Changes data model with strict schema
//     enforcement and path-qualified decode errors
//   - Bidirectional YAML, TOML, and JSON codecs sharing one in-memory
//     representation (versions are a keyed mapping in YAML/TOML and a
//     plain array in JSON)
//   - Deterministic Markdown rendering, including the generated
//     Revisions section of comparison links
//   - Document mutation: appending unreleased entries, cutting a
//     release, yanking a release
//   - JSON Schema export for external validation tooling
//
// The changelog source file (CHANGELOG.yml, CHANGELOG.toml, or
// CHANGELOG.json) is the single source of truth; CHANGELOG.md is
// generated from it and never parsed back.
package changelog
