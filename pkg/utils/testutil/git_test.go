package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/utils/testutil"
)

func TestGitRepo(t *testing.T) {
	repo := testutil.NewGitRepo(t)

	originHead := repo.Head(repo.Origin)
	gt.V(t, repo.Head(repo.Work)).Equal(originHead)

	sha := repo.CommitFile(repo.Work, "src/a.txt", "a\n")
	gt.V(t, sha).NotEqual(originHead)
	gt.V(t, repo.Git(repo.Work, "show", "--name-only", "--format=", sha)).Equal("src/a.txt")
}
