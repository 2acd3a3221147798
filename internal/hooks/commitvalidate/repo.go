package commitvalidate

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// readCommitMessage resolves rev in the repository at or above path and
// returns the message of that single commit.
// Tries as ref first (branches, tags, HEAD), then as SHA.
func readCommitMessage(path string, rev string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository: %w", err)
	}

	// Try as ref name first (handles branches, remotes, tags, HEAD, HEAD^, etc.)
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err == nil {
		commit, commitErr := repo.CommitObject(*hash)
		if commitErr == nil {
			return commit.Message, nil
		}
	}

	// Try as direct SHA
	commit, err := repo.CommitObject(plumbing.NewHash(rev))
	if err == nil {
		return commit.Message, nil
	}

	return "", fmt.Errorf("failed to resolve '%s' as ref or SHA", rev)
}
