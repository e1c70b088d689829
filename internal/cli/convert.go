package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/errors"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source]",
	Short: "Convert the changelog source to another format",
	Long: `Read the changelog source and write it in another format.

The destination is CHANGELOG with the target format's extension unless
--output is given. The source file is left in place. Version order,
descriptions, and yank markers survive the conversion unchanged.

Examples:
  changelog-md convert --format toml
  changelog-md convert CHANGELOG.yml --format json --output docs/CHANGELOG.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.GroupID = GroupDocument
	convertCmd.Flags().StringP("format", "f", "", "Target format: yaml, toml, or json (required)")
	convertCmd.Flags().StringP("output", "o", "", "Destination path (default: CHANGELOG.<ext>)")
	convertCmd.Flags().Bool("force", false, "Overwrite the destination if it exists")
	convertCmd.MarkFlagRequired("format")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var explicit string
	if len(args) == 1 {
		explicit = args[0]
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := changelog.ParseFormat(formatName)
	if err != nil {
		return errors.NewArgumentError(err.Error(),
			"Pass --format yaml, --format toml, or --format json")
	}

	srcPath, doc, err := loadSource(cmd, explicit)
	if err != nil {
		return err
	}

	dest, _ := cmd.Flags().GetString("output")
	if dest == "" {
		dest = "CHANGELOG." + format.Extension()
	} else if destFormat, err := changelog.FormatFromPath(dest); err != nil || destFormat != format {
		return errors.NewArgumentError(
			fmt.Sprintf("output path %s does not match format %s", dest, format),
			fmt.Sprintf("Use a .%s extension or drop --output", format.Extension()))
	}
	if dest == srcPath {
		return errors.NewArgumentError(
			fmt.Sprintf("source and destination are both %s", dest),
			"Pick a different --output path or a different --format")
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(dest); err == nil && !force {
		return errors.FileExists(dest)
	}

	if err := doc.Save(dest); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", srcPath, dest)
	return nil
}
