package cli

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/errors"
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Release the unreleased changes as a new version",
	Long: `Move the unreleased changes into a new version at the top of the
release history and reset the unreleased section.

The tag defaults to the version name and the date defaults to today.

Examples:
  changelog-md release 1.2.0
  changelog-md release 1.2.0 --tag v1.2.0 --date 2026-08-31
  changelog-md release 1.2.0 --description "The parser rewrite"`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.GroupID = GroupAuthoring
	releaseCmd.Flags().String("tag", "", "Release tag (default: the version name)")
	releaseCmd.Flags().String("date", "", "Release date as YYYY-MM-DD (default: today)")
	releaseCmd.Flags().String("description", "", "Optional prose describing the release")
}

func runRelease(cmd *cobra.Command, args []string) error {
	version := args[0]
	tag, _ := cmd.Flags().GetString("tag")
	date, _ := cmd.Flags().GetString("date")
	description, _ := cmd.Flags().GetString("description")

	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewArgumentError(
			fmt.Sprintf("invalid date %q", date),
			"Use the ISO form YYYY-MM-DD, e.g. --date 2026-08-31")
	}

	path, doc, err := loadSource(cmd, "")
	if err != nil {
		return err
	}

	if err := doc.Release(version, tag, date, description); err != nil {
		var dup *changelog.DuplicateVersionError
		if stderrors.As(err, &dup) {
			return errors.NewArgumentError(err.Error(),
				"Pick a version name that is not already in the changelog")
		}
		return err
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Released %s (%s)\n", version, date)
	return nil
}
