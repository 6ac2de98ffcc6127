package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

type UseCase interface {
	FindPreviousSuccess(ctx context.Context, input *model.FindPreviousSuccessInput) (*model.Pipeline, error)
	HasSuccessfulJob(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID, jobName types.JobName) (bool, error)
}
