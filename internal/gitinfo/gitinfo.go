// Package gitinfo derives page metadata from the git repository containing
// the docs directory. Everything here is best-effort: a missing repository
// degrades the metadata, never the render.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
)

// LastUpdated returns a "Last updated on ..." line derived from the HEAD
// commit of the repository containing dir.
func LastUpdated(dir string) (string, error) {
	when, err := headCommitDate(dir)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Last updated on %s", when), nil
}

func headCommitDate(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityWarning, "open git repository").
			WithContext("dir", dir)
	}
	head, err := repo.Head()
	if err != nil {
		return "", cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityWarning, "resolve HEAD")
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityWarning, "load HEAD commit")
	}
	return commit.Committer.When.UTC().Format("Jan 2, 2006"), nil
}
