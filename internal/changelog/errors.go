package changelog

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeError reports a schema or shape violation found while decoding
// a changelog document. Path locates the offending field in the style
// `versions["2.0.0"].tag` or `unreleased.added[1]`; an empty path
// refers to the document root.
type DecodeError struct {
	Path  string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// FormatError reports that a file's format could not be inferred from
// its extension.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	ext := extensionOf(e.Path)
	if ext == "" {
		return fmt.Sprintf("unable to read %s without a file extension", e.Path)
	}
	return fmt.Sprintf("invalid file extension %q (expected .yml, .yaml, .toml, or .json)", ext)
}

// DuplicateVersionError reports a release operation targeting a
// version name that is already present in the document.
type DuplicateVersionError struct {
	Version string
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("version %q already exists", e.Version)
}

// VersionNotFoundError is returned when a requested version doesn't
// exist in the document.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found (no versions released)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// fieldPath tracks the structural location of the decoder inside the
// document so failures can point at the offending field.
type fieldPath struct {
	segments []string
}

func (p *fieldPath) pushField(name string) {
	if len(p.segments) == 0 {
		p.segments = append(p.segments, name)
		return
	}
	p.segments = append(p.segments, "."+name)
}

func (p *fieldPath) pushKey(key string) {
	p.segments = append(p.segments, "["+strconv.Quote(key)+"]")
}

func (p *fieldPath) pushIndex(i int) {
	p.segments = append(p.segments, "["+strconv.Itoa(i)+"]")
}

func (p *fieldPath) pop() {
	p.segments = p.segments[:len(p.segments)-1]
}

func (p *fieldPath) String() string {
	return strings.Join(p.segments, "")
}

// errorf records a decode failure at the current path.
func (p *fieldPath) errorf(format string, args ...any) *DecodeError {
	return &DecodeError{Path: p.String(), Cause: fmt.Errorf(format, args...)}
}

// wrap records a decode failure at the current path with an underlying
// cause preserved for errors.Is/As.
func (p *fieldPath) wrap(err error) *DecodeError {
	return &DecodeError{Path: p.String(), Cause: err}
}
