package cli

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/errors"
)

var yankCmd = &cobra.Command{
	Use:   "yank <version> <reason>...",
	Short: "Mark a released version as withdrawn",
	Long: `Record a withdrawal reason on a released version. Yanked versions
stay in the changelog and are rendered with a [YANKED] marker and the
reason.

Example:
  changelog-md yank 1.2.0 "Data loss when converting TOML sources"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runYank,
}

func init() {
	rootCmd.AddCommand(yankCmd)
	yankCmd.GroupID = GroupAuthoring
}

func runYank(cmd *cobra.Command, args []string) error {
	version := args[0]
	reason := strings.Join(args[1:], " ")

	path, doc, err := loadSource(cmd, "")
	if err != nil {
		return err
	}

	if err := doc.Yank(version, reason); err != nil {
		var notFound *changelog.VersionNotFoundError
		if stderrors.As(err, &notFound) {
			return errors.NewArgumentError(err.Error(),
				"Run 'changelog-md show' to list the released versions")
		}
		return err
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Yanked %s: %s\n", version, reason)
	return nil
}
