package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/changelog-md/changelog-md/internal/changelog"
	"github.com/changelog-md/changelog-md/internal/errors"
)

// resolveSource determines the changelog source file path.
// Priority: explicit argument > --source flag > source config key >
// CHANGELOG.* autodetection in the current directory.
func resolveSource(cmd *cobra.Command, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if flagSource, _ := cmd.Flags().GetString("source"); flagSource != "" {
		return flagSource, nil
	}

	if cfg, err := loadConfig(); err == nil && cfg.Source != "" {
		return cfg.Source, nil
	}

	if path := changelog.DetectSource("."); path != "" {
		return path, nil
	}
	return "", errors.NoSourceFound()
}

// loadSource resolves and loads the changelog source document.
func loadSource(cmd *cobra.Command, explicit string) (string, *changelog.Changelog, error) {
	path, err := resolveSource(cmd, explicit)
	if err != nil {
		return "", nil, err
	}

	doc, err := changelog.Load(path)
	if err != nil {
		return path, nil, describeLoadError(err)
	}
	return path, doc, nil
}

// describeLoadError wraps decode failures with remediation guidance
// while leaving plain I/O errors untouched.
func describeLoadError(err error) error {
	var decodeErr *changelog.DecodeError
	if stderrors.As(err, &decodeErr) {
		return errors.InvalidDocument(err)
	}
	return err
}
