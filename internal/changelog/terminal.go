package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// categoryStyle defines the color and icon used for a category in
// terminal output.
type categoryStyle struct {
	color *color.Color
	icon  string
}

var categoryStyles = map[string]categoryStyle{
	"added":      {color: color.New(color.FgGreen), icon: "✓"},
	"changed":    {color: color.New(color.FgBlue), icon: "~"},
	"deprecated": {color: color.New(color.FgRed), icon: "⚠"},
	"removed":    {color: color.New(color.FgRed), icon: "✗"},
	"fixed":      {color: color.New(color.FgYellow), icon: "⚡"},
	"security":   {color: color.New(color.FgMagenta), icon: "🔒"},
}

// FormatOptions controls terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes flattened entries to the writer with terminal
// styling, grouped by version with color-coded category headers.
func FormatTerminal(entries []Entry, w io.Writer, opts FormatOptions) error {
	if len(entries) == 0 {
		return nil
	}

	width := resolveWidth(opts.MaxWidth)

	first := true
	for _, group := range groupByVersion(entries) {
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		if err := writeVersionHeader(group.version, "", w, opts); err != nil {
			return err
		}

		byCategory := map[string][]Entry{}
		for _, e := range group.entries {
			byCategory[e.Category] = append(byCategory[e.Category], e)
		}
		for _, cat := range Categories() {
			if catEntries, ok := byCategory[cat]; ok {
				if err := writeCategorySection(cat, catEntries, w, opts, width); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// FormatVersion writes a single version's entries to the writer.
func FormatVersion(v *Version, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeVersionHeader(v.Version, v.Date, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if v.Yanked != nil {
		if _, err := fmt.Fprintf(w, "[YANKED] %s\n", *v.Yanked); err != nil {
			return err
		}
	}

	for _, cat := range v.Changes.byCategory() {
		if len(cat.Entries) == 0 {
			continue
		}
		entries := make([]Entry, len(cat.Entries))
		for i, text := range cat.Entries {
			entries[i] = Entry{Text: text, Category: cat.Name, Version: v.Version}
		}
		if err := writeCategorySection(cat.Name, entries, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

type versionGroup struct {
	version string
	entries []Entry
}

// groupByVersion groups entries by their version, preserving order.
func groupByVersion(entries []Entry) []versionGroup {
	var groups []versionGroup
	var current *versionGroup

	for _, e := range entries {
		if current == nil || current.version != e.Version {
			if current != nil {
				groups = append(groups, *current)
			}
			current = &versionGroup{version: e.Version}
		}
		current.entries = append(current.entries, e)
	}

	if current != nil {
		groups = append(groups, *current)
	}
	return groups
}

func writeVersionHeader(version, date string, w io.Writer, opts FormatOptions) error {
	header := version
	if version == UnreleasedName {
		header = "Unreleased"
	} else if date != "" {
		header = fmt.Sprintf("%s (%s)", version, date)
	}

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

func writeCategorySection(category string, entries []Entry, w io.Writer, opts FormatOptions, width int) error {
	style := categoryStyles[category]
	displayName := strings.ToUpper(category[:1]) + category[1:]

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "\n### %s\n", displayName); err != nil {
			return err
		}
	} else {
		colored := style.color.SprintFunc()
		if _, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.icon), colored(displayName)); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if err := writeEntry(entry, style, w, opts, width); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(entry Entry, style categoryStyle, w io.Writer, opts FormatOptions, width int) error {
	const prefix = "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, entry.Text)
		return err
	}

	wrapped := wrapText(entry.Text, width-len(prefix), "    ")
	colored := style.color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for
// continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
