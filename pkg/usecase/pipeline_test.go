package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/mock"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra"
	"github.com/secmon-lab/lineage/pkg/usecase"
)

func TestGetPipelineStatus(t *testing.T) {
	gl := &mock.GitLabMock{
		GetPipelineFunc: func(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID) (*model.PipelineStatus, error) {
			return &model.PipelineStatus{Status: types.PipelineStatusFailed, DetailedStatus: "failed"}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitLab(gl)))

	status := gt.R1(uc.GetPipelineStatus(context.Background(), "42", 7)).NoError(t)
	gt.V(t, status.Status).Equal(types.PipelineStatusFailed)
	gt.V(t, gl.GetPipelineCalls()[0].PipelineID).Equal(types.PipelineID(7))
}

func TestListCommitChanges(t *testing.T) {
	gl := &mock.GitLabMock{
		GetCommitDiffFunc: func(ctx context.Context, input *interfaces.GetCommitDiffInput) ([]*model.CommitDiff, *model.PageInfo, error) {
			info := &model.PageInfo{Page: input.Page, TotalPages: 2}
			switch input.Page {
			case 1:
				return []*model.CommitDiff{{OldPath: "a.go", NewPath: "a.go"}}, info, nil
			case 2:
				return []*model.CommitDiff{{OldPath: "b.go", NewPath: "b.go", NewFile: true}}, info, nil
			}
			return nil, info, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitLab(gl)))

	diffs := gt.R1(uc.ListCommitChanges(context.Background(), "42", "abc")).NoError(t)
	gt.A(t, diffs).Length(2)
	gt.V(t, diffs[1].Kind()).Equal(types.ChangeKindAdded)
	gt.A(t, gl.GetCommitDiffCalls()).Length(3)
	gt.V(t, gl.GetCommitDiffCalls()[0].Input.SHA).Equal(types.CommitSHA("abc"))
}

func TestTriggerPipeline(t *testing.T) {
	gl := &mock.GitLabMock{
		TriggerPipelineFunc: func(ctx context.Context, projectID types.ProjectID, input *model.TriggerPipelineInput) (*model.Pipeline, error) {
			return &model.Pipeline{ID: 99, Ref: input.Ref, Status: types.PipelineStatusCreated}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitLab(gl)))

	t.Run("trigger with token", func(t *testing.T) {
		p := gt.R1(uc.TriggerPipeline(context.Background(), "42", &model.TriggerPipelineInput{
			Ref:       "release",
			Token:     "secret",
			Variables: map[string]string{"A": "1"},
		})).NoError(t)
		gt.V(t, p.ID).Equal(types.PipelineID(99))
		gt.V(t, gl.TriggerPipelineCalls()[0].Input.Variables).Equal(map[string]string{"A": "1"})
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		_, err := uc.TriggerPipeline(context.Background(), "42", &model.TriggerPipelineInput{Ref: "release"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, gl.TriggerPipelineCalls()).Length(1)
	})
}
