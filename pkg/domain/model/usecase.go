package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

type ResolveBranchChangesInput struct {
	// RepositoryPath is a working copy of the repository. Every git command targets it explicitly.
	RepositoryPath string
	Branch         types.BranchName
	HeadCommit     types.CommitSHA

	// Refresh forces comparison with the remote default branch tip even when BaselineCommit is set
	Refresh        bool
	BaselineCommit types.CommitSHA
}

func (x *ResolveBranchChangesInput) Validate() error {
	if x.RepositoryPath == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository path is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch name is empty")
	}
	if x.HeadCommit == "" {
		return goerr.Wrap(types.ErrValidationFailed, "head commit is empty")
	}
	return nil
}

// Baseline returns the commit reference the head commit is compared with
func (x *ResolveBranchChangesInput) Baseline() string {
	if x.Refresh || x.BaselineCommit == "" {
		return types.DefaultBranch.Remote()
	}
	return x.BaselineCommit.String()
}

type FindPreviousSuccessInput struct {
	ProjectID  types.ProjectID
	CurrentSHA types.CommitSHA
	Ref        types.RefName

	// CheckJobName accepts a pipeline when a job of this name succeeded in it.
	// It takes priority over CheckAnyPipelineSuccess.
	CheckJobName types.JobName

	// CheckAnyPipelineSuccess accepts a pipeline whose own status is success
	CheckAnyPipelineSuccess bool
}

func (x *FindPreviousSuccessInput) Validate() error {
	if x.ProjectID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "project ID is empty")
	}
	if x.CurrentSHA == "" {
		return goerr.Wrap(types.ErrValidationFailed, "current SHA is empty")
	}
	if x.Ref == "" {
		return goerr.Wrap(types.ErrValidationFailed, "ref is empty")
	}
	if x.CheckJobName == "" && !x.CheckAnyPipelineSuccess {
		return goerr.Wrap(types.ErrInvalidOption, "either check job name or pipeline success check must be set")
	}
	return nil
}
