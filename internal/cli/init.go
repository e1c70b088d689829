package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/errors"
	"github.com/changelog-md/changelog-md/internal/git"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new changelog source file",
	Long: `Create a new changelog source file seeded with a starter document.

The repository URL is taken from the enclosing git repository's origin
remote when one exists, otherwise a placeholder is written for you to
edit. The file is named CHANGELOG with the extension of the chosen
format.

Examples:
  changelog-md init                  # create CHANGELOG.yml
  changelog-md init --format toml    # create CHANGELOG.toml
  changelog-md init --force          # overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.GroupID = GroupGettingStarted
	initCmd.Flags().StringP("format", "f", "", "Source format: yaml, toml, or json (default from config)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing changelog file")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	if formatName == "" {
		formatName = cfg.DefaultFormat
	}
	if formatName == "" {
		formatName = "yaml"
	}
	format, err := changelog.ParseFormat(formatName)
	if err != nil {
		return errors.NewArgumentError(err.Error(),
			"Pass --format yaml, --format toml, or --format json")
	}

	force, _ := cmd.Flags().GetBool("force")
	path := "CHANGELOG." + format.Extension()
	if _, err := os.Stat(path); err == nil && !force {
		return errors.FileExists(path)
	}
	if existing := changelog.DetectSource("."); existing != "" && existing != path && !force {
		return errors.FileExists(existing)
	}

	doc := changelog.Default()
	switch {
	case cfg.Repository != "":
		doc.Repository = cfg.Repository
	default:
		if url, err := git.RemoteURL("."); err == nil {
			doc.Repository = url
		}
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
