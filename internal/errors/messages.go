package errors

import "fmt"

// Common error messages for the changelog-md CLI.
// These templates ensure consistent, actionable error messages.

// NoSourceFound creates an error for a missing changelog source file.
func NoSourceFound() *CLIError {
	return NewDocumentError(
		"unable to find a changelog source file",
		"Run 'changelog-md init' to create a CHANGELOG.yml",
		"Or pass the source path explicitly, e.g. 'changelog-md render path/to/CHANGELOG.toml'",
	)
}

// FileExists creates an error for refusing to overwrite an existing file.
func FileExists(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("%s already exists", path),
		"Pass --force to overwrite it",
	)
}

// InvalidDocument creates an error for a changelog source that failed
// to decode.
func InvalidDocument(err error) *CLIError {
	return NewDocumentError(
		err.Error(),
		"The path in the message points at the offending field",
		"Run 'changelog-md schema' to see the expected document shape",
	)
}

// UnknownCategory creates an error for an invalid change category.
func UnknownCategory(category string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown category %q", category),
		"changelog-md add <category> <text>",
		"Valid categories: added, changed, deprecated, removed, fixed, security",
	)
}
