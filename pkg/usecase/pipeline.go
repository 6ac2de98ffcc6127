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

func (x *UseCase) GetPipelineStatus(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID) (*model.PipelineStatus, error) {
	gl, err := x.gitLab()
	if err != nil {
		return nil, err
	}
	return gl.GetPipeline(ctx, projectID, pipelineID)
}

// ListCommitChanges returns every file entry of the commit diff
func (x *UseCase) ListCommitChanges(ctx context.Context, projectID types.ProjectID, sha types.CommitSHA) ([]*model.CommitDiff, error) {
	gl, err := x.gitLab()
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, page int) ([]*model.CommitDiff, *model.PageInfo, error) {
		return gl.GetCommitDiff(ctx, &interfaces.GetCommitDiffInput{
			ProjectID: projectID,
			SHA:       sha,
			Page:      page,
		})
	}

	diffs, err := pager.New(fetch).Collect(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commit changes",
			goerr.V("project_id", projectID),
			goerr.V("sha", sha),
		)
	}
	return diffs, nil
}

func (x *UseCase) TriggerPipeline(ctx context.Context, projectID types.ProjectID, input *model.TriggerPipelineInput) (*model.Pipeline, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	gl, err := x.gitLab()
	if err != nil {
		return nil, err
	}

	pipeline, err := gl.TriggerPipeline(ctx, projectID, input)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Triggered pipeline",
		slog.Any("project_id", projectID),
		slog.Any("ref", input.Ref),
		slog.Any("pipeline_id", pipeline.ID),
		slog.String("web_url", pipeline.WebURL),
	)
	return pipeline, nil
}
