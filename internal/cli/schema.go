package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [destination]",
	Short: "Print the JSON Schema for changelog documents",
	Long: `Print the JSON Schema describing the changelog document structure.

The schema describes the JSON encoding of the document. Editors and CI
pipelines can use it to validate and autocomplete changelog sources.
With a destination argument the schema is written to that file instead
of standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.GroupID = GroupInternal
}

func runSchema(cmd *cobra.Command, args []string) error {
	schema, err := changelog.SchemaJSON()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := os.WriteFile(args[0], []byte(schema), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), schema)
	return nil
}
