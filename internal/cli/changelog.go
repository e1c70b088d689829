package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
)

var changelogLastFlag int

var changelogCmd = &cobra.Command{
	Use:   "changelog [version]",
	Short: "View changelog-md's own changelog",
	Long: `View changelog-md's own changelog entries.

The changelog is embedded at build time, so it shows changes up to when
this binary was built. Use a version argument to see all entries for a
specific version, or --last to control the entry count.

Examples:
  changelog-md changelog              # most recent entries
  changelog-md changelog 0.2.0        # all entries for version 0.2.0
  changelog-md changelog unreleased   # unreleased changes
  changelog-md changelog --last 10    # more entries`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChangelogView,
}

func init() {
	rootCmd.AddCommand(changelogCmd)
	changelogCmd.GroupID = GroupInternal
	changelogCmd.Flags().IntVar(&changelogLastFlag, "last", 5, "Number of entries to show")
}

func runChangelogView(cmd *cobra.Command, args []string) error {
	doc, err := changelog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading embedded changelog: %w", err)
	}

	opts := changelog.FormatOptions{Plain: plainOutput(cmd)}

	if len(args) == 1 {
		return showVersion(doc, args[0], cmd, opts)
	}
	return showLastEntries(doc, changelogLastFlag, cmd, opts)
}
