// Package git provides Git repository utilities for changelog-md. It uses
// the go-git library to discover the origin remote URL of the enclosing
// repository so that init can seed the changelog's repository field without
// asking the user. All operations are local; no network access is performed.
package git

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
)

// openRepo opens a git repository at the specified path or current working
// directory. It uses go-git's PlainOpenWithOptions with DetectDotGit enabled
// to traverse up the directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsGitRepository checks if the given directory is within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	return err == nil
}

// RemoteURL returns the first URL of the "origin" remote for the repository
// containing path, normalized to an https form. Returns an error when no
// repository or no origin remote is found.
func RemoteURL(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("getting origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	return NormalizeURL(urls[0]), nil
}

// NormalizeURL converts common git remote URL forms into a browsable https
// URL. SSH forms like git@github.com:owner/repo.git become
// https://github.com/owner/repo; https URLs only lose a trailing .git.
func NormalizeURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	switch {
	case strings.HasPrefix(url, "git@"):
		// git@host:owner/repo
		rest := strings.TrimPrefix(url, "git@")
		host, repoPath, ok := strings.Cut(rest, ":")
		if !ok {
			return url
		}
		return "https://" + host + "/" + repoPath
	case strings.HasPrefix(url, "ssh://git@"):
		rest := strings.TrimPrefix(url, "ssh://git@")
		return "https://" + rest
	case strings.HasPrefix(url, "git://"):
		return "https://" + strings.TrimPrefix(url, "git://")
	default:
		return url
	}
}
