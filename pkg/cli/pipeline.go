package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/lineage/pkg/cli/config"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra"
	"github.com/secmon-lab/lineage/pkg/usecase"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func newGitLabUseCase(ctx context.Context, cfg *config.GitLab) (*usecase.UseCase, error) {
	logging.From(ctx).Debug("GitLab config", slog.Any("GitLab", cfg))

	client, err := cfg.New()
	if err != nil {
		return nil, err
	}
	return usecase.New(infra.New(infra.WithGitLab(client))), nil
}

func projectFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "project-id",
		Aliases:     []string{"p"},
		Usage:       "GitLab project ID or URL-encoded path",
		Required:    true,
		Sources:     cli.EnvVars("LINEAGE_PROJECT_ID", "CI_PROJECT_ID"),
		Destination: dst,
	}
}

func pipelineFlag(dst *int) cli.Flag {
	return &cli.IntFlag{
		Name:        "pipeline-id",
		Usage:       "GitLab pipeline ID",
		Required:    true,
		Destination: dst,
	}
}

func (x *CLI) previousSHACommand() *cli.Command {
	var (
		gitLab     config.GitLab
		projectID  string
		sha        string
		ref        string
		job        string
		anySuccess bool
	)

	return &cli.Command{
		Name:  "previous-sha",
		Usage: "Print SHA of the last successful pipeline before the current commit on a ref",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "sha",
				Usage:       "Current commit SHA",
				Required:    true,
				Sources:     cli.EnvVars("CI_COMMIT_SHA"),
				Destination: &sha,
			},
			&cli.StringFlag{
				Name:        "ref",
				Usage:       "Branch or tag name of pipelines",
				Required:    true,
				Sources:     cli.EnvVars("CI_COMMIT_REF_NAME"),
				Destination: &ref,
			},
			&cli.StringFlag{
				Name:        "job",
				Usage:       "Accept a pipeline in which a job of this name succeeded",
				Destination: &job,
			},
			&cli.BoolFlag{
				Name:        "any-success",
				Usage:       "Accept a pipeline whose status is success",
				Destination: &anySuccess,
			},
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			pipeline, err := uc.FindPreviousSuccess(ctx, &model.FindPreviousSuccessInput{
				ProjectID:               types.ProjectID(projectID),
				CurrentSHA:              types.CommitSHA(sha),
				Ref:                     types.RefName(ref),
				CheckJobName:            types.JobName(job),
				CheckAnyPipelineSuccess: anySuccess,
			})
			if err != nil {
				return err
			}
			if pipeline == nil {
				return nil
			}
			return writeLine(x.out, pipeline.SHA)
		},
	}
}

func (x *CLI) jobCheckCommand() *cli.Command {
	var (
		gitLab     config.GitLab
		projectID  string
		pipelineID int
		job        string
	)

	return &cli.Command{
		Name:  "job-check",
		Usage: "Print whether a job of the name succeeded in the pipeline",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			pipelineFlag(&pipelineID),
			&cli.StringFlag{
				Name:        "job",
				Usage:       "Job name",
				Required:    true,
				Destination: &job,
			},
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			ok, err := uc.HasSuccessfulJob(ctx, types.ProjectID(projectID), types.PipelineID(pipelineID), types.JobName(job))
			if err != nil {
				return err
			}
			return writeLine(x.out, ok)
		},
	}
}

func (x *CLI) pipelineCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipeline",
		Usage: "Inspect and trigger pipelines",
		Commands: []*cli.Command{
			x.pipelineStatusCommand(),
			x.pipelineJobsCommand(),
			x.pipelineTriggerCommand(),
		},
	}
}

func (x *CLI) pipelineStatusCommand() *cli.Command {
	var (
		gitLab     config.GitLab
		projectID  string
		pipelineID int
	)

	return &cli.Command{
		Name:  "status",
		Usage: "Print status and detailed status label of a pipeline",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			pipelineFlag(&pipelineID),
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			status, err := uc.GetPipelineStatus(ctx, types.ProjectID(projectID), types.PipelineID(pipelineID))
			if err != nil {
				return err
			}
			return writeJSON(x.out, status)
		},
	}
}

func (x *CLI) pipelineJobsCommand() *cli.Command {
	var (
		gitLab     config.GitLab
		projectID  string
		pipelineID int
	)

	return &cli.Command{
		Name:  "jobs",
		Usage: "Print job IDs of a pipeline by job name",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			pipelineFlag(&pipelineID),
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			jobs, err := uc.ListPipelineJobs(ctx, types.ProjectID(projectID), types.PipelineID(pipelineID))
			if err != nil {
				return err
			}
			return writeJSON(x.out, jobs)
		},
	}
}

func parseVariables(values []string) (map[string]string, error) {
	vars := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "variable must be KEY=VALUE", goerr.V("value", v))
		}
		vars[key] = value
	}
	return vars, nil
}

func (x *CLI) pipelineTriggerCommand() *cli.Command {
	var (
		gitLab    config.GitLab
		projectID string
		ref       string
		token     string
		variables []string
	)

	return &cli.Command{
		Name:  "trigger",
		Usage: "Trigger a pipeline with a trigger token",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "ref",
				Usage:       "Branch or tag to run the pipeline on",
				Required:    true,
				Destination: &ref,
			},
			&cli.StringFlag{
				Name:        "trigger-token",
				Usage:       "Pipeline trigger token",
				Required:    true,
				Sources:     cli.EnvVars("LINEAGE_TRIGGER_TOKEN"),
				Destination: &token,
			},
			&cli.StringSliceFlag{
				Name:        "variable",
				Aliases:     []string{"v"},
				Usage:       "Pipeline variable as KEY=VALUE (repeatable)",
				Destination: &variables,
			},
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			vars, err := parseVariables(variables)
			if err != nil {
				return err
			}

			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			pipeline, err := uc.TriggerPipeline(ctx, types.ProjectID(projectID), &model.TriggerPipelineInput{
				Ref:       types.RefName(ref),
				Token:     types.TriggerToken(token),
				Variables: vars,
			})
			if err != nil {
				return err
			}
			return writeJSON(x.out, pipeline)
		},
	}
}

func (x *CLI) commitDiffCommand() *cli.Command {
	var (
		gitLab    config.GitLab
		projectID string
		sha       string
	)

	return &cli.Command{
		Name:  "commit-diff",
		Usage: "Print files changed by a commit according to GitLab",
		Flags: slice.Flatten([]cli.Flag{
			projectFlag(&projectID),
			&cli.StringFlag{
				Name:        "sha",
				Usage:       "Commit SHA",
				Required:    true,
				Destination: &sha,
			},
		}, gitLab.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newGitLabUseCase(ctx, &gitLab)
			if err != nil {
				return err
			}

			diffs, err := uc.ListCommitChanges(ctx, types.ProjectID(projectID), types.CommitSHA(sha))
			if err != nil {
				return err
			}
			return writeJSON(x.out, diffs)
		},
	}
}
