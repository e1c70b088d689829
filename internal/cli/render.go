package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/watch"
)

var renderCmd = &cobra.Command{
	Use:   "render [destination]",
	Short: "Render the changelog source to Markdown",
	Long: `Render the changelog source as Keep a Changelog style Markdown,
including the generated Revisions link section.

Without a destination the Markdown is written to standard output.
With --watch the destination is re-rendered whenever the source file
changes, until interrupted.

Examples:
  changelog-md render                      # print Markdown to stdout
  changelog-md render CHANGELOG.md         # write CHANGELOG.md
  changelog-md render CHANGELOG.md --watch # keep CHANGELOG.md up to date`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.GroupID = GroupDocument
	renderCmd.Flags().BoolP("watch", "w", false, "Re-render whenever the source changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	var dest string
	if len(args) == 1 {
		dest = args[0]
	}

	srcPath, doc, err := loadSource(cmd, "")
	if err != nil {
		return err
	}

	if err := writeMarkdown(cmd, doc, dest); err != nil {
		return err
	}

	watchMode, _ := cmd.Flags().GetBool("watch")
	if !watchMode {
		return nil
	}
	if dest == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: --watch without a destination re-prints to stdout on every change")
	}
	return watchAndRender(cmd, srcPath, dest)
}

// writeMarkdown renders the document to the destination file, or to
// the command's stdout when dest is empty.
func writeMarkdown(cmd *cobra.Command, doc *changelog.Changelog, dest string) error {
	markdown := doc.ToMarkdown()
	if dest == "" {
		fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}
	if err := os.WriteFile(dest, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", dest)
	return nil
}

// watchAndRender re-renders the destination on every change to the
// source file until the context is cancelled by a signal. Decode
// failures are reported and watching continues so that a half-saved
// edit does not stop the loop.
func watchAndRender(cmd *cobra.Command, srcPath, dest string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w, err := watch.New(srcPath)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (press Ctrl+C to stop)\n", srcPath)

	err = w.Watch(ctx, func() error {
		doc, err := changelog.Load(srcPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return nil
		}
		return writeMarkdown(cmd, doc, dest)
	})
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
