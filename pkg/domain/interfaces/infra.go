package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Git GitLab Warehouse

import (
	"context"

	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

// Git runs git commands against the working copy at repo. Implementations must
// not change the process working directory.
type Git interface {
	Fetch(ctx context.Context, repo string) error
	Checkout(ctx context.Context, repo string, ref string) error
	// Pull fast-forwards the current branch. Empty remote and branch pull the upstream.
	Pull(ctx context.Context, repo string, remote string, branch types.BranchName) error
	MergeBase(ctx context.Context, repo string, a, b string) (types.CommitSHA, error)
	// DiffTree returns raw `diff-tree --no-commit-id --name-status -r` output between two commits
	DiffTree(ctx context.Context, repo string, from, to string) (string, error)
}

type ListPipelinesInput struct {
	ProjectID types.ProjectID
	Ref       types.RefName
	PerPage   int
	Page      int
}

type ListPipelineJobsInput struct {
	ProjectID  types.ProjectID
	PipelineID types.PipelineID
	// Scope filters jobs by status on the server side. Empty means all jobs.
	Scope []types.PipelineStatus
	Page  int
}

type GetCommitDiffInput struct {
	ProjectID types.ProjectID
	SHA       types.CommitSHA
	Page      int
}

// GitLab is the subset of the GitLab v4 REST API used for lineage resolution.
// Listing methods return one page and its pagination metadata.
type GitLab interface {
	ListPipelines(ctx context.Context, input *ListPipelinesInput) ([]*model.Pipeline, *model.PageInfo, error)
	ListPipelineJobs(ctx context.Context, input *ListPipelineJobsInput) ([]*model.Job, *model.PageInfo, error)
	GetCommitDiff(ctx context.Context, input *GetCommitDiffInput) ([]*model.CommitDiff, *model.PageInfo, error)
	GetPipeline(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID) (*model.PipelineStatus, error)
	TriggerPipeline(ctx context.Context, projectID types.ProjectID, input *model.TriggerPipelineInput) (*model.Pipeline, error)
}

// Warehouse executes SQL against a data warehouse
type Warehouse interface {
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (*model.Table, error)
	CallProcedure(ctx context.Context, name string, args ...any) error
	Close() error
}
