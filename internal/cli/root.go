// Package cli implements the changelog-md command tree. Each command
// lives in its own file and registers itself on rootCmd in an init
// function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/config"
	"github.com/changelog-md/changelog-md/internal/errors"
)

// Command group identifiers used to organize help output.
const (
	GroupGettingStarted = "getting-started"
	GroupAuthoring      = "authoring"
	GroupDocument       = "document"
	GroupInternal       = "internal"
)

var rootCmd = &cobra.Command{
	Use:   "changelog-md",
	Short: "Manage changelogs as structured YAML, TOML, or JSON",
	Long: `changelog-md keeps your changelog in a structured source file
(CHANGELOG.yml, CHANGELOG.toml, or CHANGELOG.json) and renders it to
Keep a Changelog style Markdown with a generated Revisions link section.

The source file is the single source of truth. Add entries as you work,
release them as a version, and render Markdown for publishing.`,
	Example: `  changelog-md init                      # create CHANGELOG.yml in the current directory
  changelog-md add added "New feature"   # record an unreleased change
  changelog-md release 1.2.0             # turn unreleased changes into version 1.2.0
  changelog-md render CHANGELOG.md       # write the Markdown rendition`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: GroupAuthoring, Title: "Authoring:"},
		&cobra.Group{ID: GroupDocument, Title: "Document:"},
		&cobra.Group{ID: GroupInternal, Title: "Internal:"},
	)

	rootCmd.PersistentFlags().String("source", "", "Changelog source file (default: CHANGELOG.* autodetection)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and icons in output")
}

// Execute runs the root command and prints any resulting error.
// The returned error carries the exit code via ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else if _, ok := err.(*ExitError); !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadConfig loads tool configuration, degrading to defaults when the
// config files are unreadable only if loading itself fails on a
// missing file. A malformed config is reported to the user.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check .changelog-md.yml and ~/.config/changelog-md/config.yml for syntax errors")
	}
	return cfg, nil
}

// plainOutput reports whether colored output is disabled, combining
// the --plain flag with the plain config key.
func plainOutput(cmd *cobra.Command) bool {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return true
	}
	cfg, err := loadConfig()
	if err != nil {
		return false
	}
	return cfg.Plain
}
