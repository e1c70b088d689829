package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
)

var showLastFlag int

var showCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "View changelog entries in the terminal",
	Long: `View entries from the changelog source with colors and icons.

By default, shows the most recent entries across all versions. Use a
version argument to see one version in full, or "unreleased" to see
the pending changes.

Examples:
  changelog-md show                # most recent entries
  changelog-md show 1.2.0          # all entries for version 1.2.0
  changelog-md show unreleased     # pending changes
  changelog-md show --last 20      # more entries
  changelog-md show --plain        # no colors or icons`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.GroupID = GroupDocument
	showCmd.Flags().IntVar(&showLastFlag, "last", 10, "Number of entries to show")
}

func runShow(cmd *cobra.Command, args []string) error {
	_, doc, err := loadSource(cmd, "")
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: plainOutput(cmd)}

	if len(args) == 1 {
		return showVersion(doc, args[0], cmd, opts)
	}
	return showLastEntries(doc, showLastFlag, cmd, opts)
}

func showVersion(doc *changelog.Changelog, version string, cmd *cobra.Command, opts changelog.FormatOptions) error {
	v, err := doc.GetVersion(version)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if stderrors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, ver := range doc.ListVersions() {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ver)
			}
			return NewExitError(ExitInvalidArguments)
		}
		return fmt.Errorf("getting version: %w", err)
	}

	return changelog.FormatVersion(v, cmd.OutOrStdout(), opts)
}

func showLastEntries(doc *changelog.Changelog, n int, cmd *cobra.Command, opts changelog.FormatOptions) error {
	entries := doc.GetLastN(n)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No changelog entries found.")
		return nil
	}

	if err := changelog.FormatTerminal(entries, cmd.OutOrStdout(), opts); err != nil {
		return fmt.Errorf("formatting entries: %w", err)
	}

	total := doc.EntryCount()
	if total > len(entries) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d entries shown. Use --last %d to see all)\n",
			len(entries), total, total)
	}
	return nil
}
