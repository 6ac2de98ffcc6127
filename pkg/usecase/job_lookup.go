package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/secmon-lab/lineage/pkg/utils/pager"
)

func (x *UseCase) listJobs(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID, scope []types.PipelineStatus) ([]*model.Job, error) {
	gl, err := x.gitLab()
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, page int) ([]*model.Job, *model.PageInfo, error) {
		return gl.ListPipelineJobs(ctx, &interfaces.ListPipelineJobsInput{
			ProjectID:  projectID,
			PipelineID: pipelineID,
			Scope:      scope,
			Page:       page,
		})
	}

	jobs, err := pager.New(fetch).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pipeline jobs",
			goerr.V("project_id", projectID),
			goerr.V("pipeline_id", pipelineID),
		)
	}
	return jobs, nil
}

// HasSuccessfulJob reports whether a job named jobName succeeded in the
// pipeline. Retried jobs with the same name count once.
func (x *UseCase) HasSuccessfulJob(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID, jobName types.JobName) (bool, error) {
	jobs, err := x.listJobs(ctx, projectID, pipelineID, []types.PipelineStatus{types.PipelineStatusSuccess})
	if err != nil {
		return false, err
	}

	succeeded := make(map[types.JobName]struct{}, len(jobs))
	for _, job := range jobs {
		succeeded[job.Name] = struct{}{}
	}

	_, found := succeeded[jobName]
	logging.From(ctx).Debug("Checked successful job",
		slog.Any("project_id", projectID),
		slog.Any("pipeline_id", pipelineID),
		slog.Any("job", jobName),
		slog.Bool("found", found),
	)
	return found, nil
}

// ListPipelineJobs returns job IDs of every job in the pipeline by name. When
// a name appears more than once the job listed last wins.
func (x *UseCase) ListPipelineJobs(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID) (map[types.JobName]types.JobID, error) {
	jobs, err := x.listJobs(ctx, projectID, pipelineID, nil)
	if err != nil {
		return nil, err
	}

	result := make(map[types.JobName]types.JobID, len(jobs))
	for _, job := range jobs {
		result[job.Name] = job.ID
	}
	return result, nil
}
