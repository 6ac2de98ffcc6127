package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/secmon-lab/lineage/pkg/utils/pager"
)

const pipelinesPerPage = 100

// FindPreviousSuccess walks pipelines of the ref newest first. Pipelines are
// skipped until one runs the current SHA (the anchor); from then on the first
// pipeline that passes the check is returned and no further page is fetched.
// A missing anchor or no passing pipeline returns nil without error.
func (x *UseCase) FindPreviousSuccess(ctx context.Context, input *model.FindPreviousSuccessInput) (*model.Pipeline, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gl, err := x.gitLab()
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		slog.Any("project_id", input.ProjectID),
		slog.Any("ref", input.Ref),
		slog.Any("current_sha", input.CurrentSHA),
	)
	logger.Info("Looking for previous successful pipeline",
		slog.Any("check_job", input.CheckJobName),
		slog.Bool("check_pipeline", input.CheckAnyPipelineSuccess),
	)

	fetch := func(ctx context.Context, page int) ([]*model.Pipeline, *model.PageInfo, error) {
		return gl.ListPipelines(ctx, &interfaces.ListPipelinesInput{
			ProjectID: input.ProjectID,
			Ref:       input.Ref,
			PerPage:   pipelinesPerPage,
			Page:      page,
		})
	}

	anchored := false
	for pipeline, err := range pager.New(fetch).All(ctx) {
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pipelines",
				goerr.V("project_id", input.ProjectID),
				goerr.V("ref", input.Ref),
			)
		}

		if pipeline.SHA == input.CurrentSHA {
			anchored = true
			continue
		}
		if !anchored {
			continue
		}

		ok, err := x.isPreviousSuccess(ctx, input, pipeline)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Info("Found previous successful pipeline",
				slog.Any("pipeline_id", pipeline.ID),
				slog.Any("sha", pipeline.SHA),
			)
			return pipeline, nil
		}
	}

	if !anchored {
		logger.Info("Current SHA is not found in pipelines")
	} else {
		logger.Info("No previous successful pipeline")
	}
	return nil, nil
}

func (x *UseCase) isPreviousSuccess(ctx context.Context, input *model.FindPreviousSuccessInput, pipeline *model.Pipeline) (bool, error) {
	if input.CheckJobName != "" {
		return x.HasSuccessfulJob(ctx, input.ProjectID, pipeline.ID, input.CheckJobName)
	}
	return input.CheckAnyPipelineSuccess && pipeline.Status.IsSuccess(), nil
}
