package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [source]...",
	Short: "Check that changelog sources decode cleanly",
	Long: `Parse one or more changelog source files and report any problems.

Unknown fields, wrong types, and missing required fields are all
errors; the reported path points at the offending field. Without
arguments the autodetected CHANGELOG.* file is validated.

Exit status is 0 when every file is valid and 1 otherwise.

Examples:
  changelog-md validate
  changelog-md validate CHANGELOG.yml docs/CHANGELOG.json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.GroupID = GroupDocument
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		path, err := resolveSource(cmd, "")
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range paths {
		doc, err := changelog.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "✓ %s (%d versions, %d entries)\n", path, len(doc.Versions), doc.EntryCount())
	}

	if failed > 0 {
		if len(paths) > 1 {
			fmt.Fprintf(out, "%d of %d files invalid\n", failed, len(paths))
		}
		return NewExitError(ExitInvalidDocument)
	}
	return nil
}
