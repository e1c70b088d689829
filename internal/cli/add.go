package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/errors"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <text>...",
	Short: "Record an unreleased change",
	Long: `Append a change entry to the unreleased section of the changelog.

The category is one of the Keep a Changelog categories: added, changed,
deprecated, removed, fixed, or security. Extra arguments are joined
into a single entry so the text does not need to be quoted.

Examples:
  changelog-md add added "Support TOML sources"
  changelog-md add fixed Crash when the versions table is empty`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.GroupID = GroupAuthoring
}

func runAdd(cmd *cobra.Command, args []string) error {
	category := strings.ToLower(args[0])
	text := strings.Join(args[1:], " ")

	path, doc, err := loadSource(cmd, "")
	if err != nil {
		return err
	}

	if err := doc.Unreleased.Push(category, text); err != nil {
		return errors.UnknownCategory(category)
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added to unreleased %s: %s\n", category, text)
	return nil
}
