package cli

import (
	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

// RepositoryMetadata is the branch and commit a command works on
type RepositoryMetadata struct {
	Branch     types.BranchName
	HeadCommit types.CommitSHA
}

// AutoDetectRepositoryMetadata fills empty fields of meta from HEAD of the
// repository at path. A detached HEAD leaves Branch empty.
func AutoDetectRepositoryMetadata(path string, meta *RepositoryMetadata) error {
	if meta.Branch != "" && meta.HeadCommit != "" {
		return nil
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	head, err := repo.Head()
	if err != nil {
		return goerr.Wrap(err, "failed to get HEAD", goerr.V("path", path))
	}

	if meta.HeadCommit == "" {
		meta.HeadCommit = types.CommitSHA(head.Hash().String())
	}
	if meta.Branch == "" && head.Name().IsBranch() {
		meta.Branch = types.BranchName(head.Name().Short())
	}

	return nil
}
