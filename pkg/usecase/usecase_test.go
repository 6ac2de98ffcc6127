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

// pipelinePages returns a ListPipelines implementation serving pages[i] as page i+1
func pipelinePages(pages ...[]*model.Pipeline) func(ctx context.Context, input *interfaces.ListPipelinesInput) ([]*model.Pipeline, *model.PageInfo, error) {
	return func(ctx context.Context, input *interfaces.ListPipelinesInput) ([]*model.Pipeline, *model.PageInfo, error) {
		info := &model.PageInfo{Page: input.Page, TotalPages: len(pages)}
		if input.Page < 1 || input.Page > len(pages) {
			return nil, info, nil
		}
		return pages[input.Page-1], info, nil
	}
}

func pipeline(id int, sha string, status types.PipelineStatus) *model.Pipeline {
	return &model.Pipeline{
		ID:     types.PipelineID(id),
		SHA:    types.CommitSHA(sha),
		Ref:    "master",
		Status: status,
	}
}

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New())

	t.Run("GitLab operations require GitLab client", func(t *testing.T) {
		_, err := uc.GetPipelineStatus(context.Background(), "1", 1)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("warehouse operations require warehouse client", func(t *testing.T) {
		err := uc.Exec(context.Background(), "SELECT 1")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("scanner checks options before GitLab", func(t *testing.T) {
		gl := &mock.GitLabMock{}
		uc := usecase.New(infra.New(infra.WithGitLab(gl)))
		_, err := uc.FindPreviousSuccess(context.Background(), &model.FindPreviousSuccessInput{
			ProjectID:  "1",
			CurrentSHA: "c1",
			Ref:        "master",
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.V(t, len(gl.ListPipelinesCalls())).Equal(0)
	})
}
