package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the changelog-md version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "changelog-md %s\n", version.Version)
		if !version.IsDevBuild() {
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.BuildDate)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.GroupID = GroupGettingStarted
}
