package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra"
	"github.com/secmon-lab/lineage/pkg/usecase"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func repoFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "repo",
		Aliases:     []string{"r"},
		Usage:       "Path to working copy of the repository",
		Value:       ".",
		Sources:     cli.EnvVars("LINEAGE_REPO"),
		Destination: dst,
	}
}

func (x *CLI) changesCommand() *cli.Command {
	var (
		repo     string
		branch   string
		head     string
		baseline string
		refresh  bool
	)

	return &cli.Command{
		Name:  "changes",
		Usage: "List files changed on a branch compared with origin/master or a baseline commit",
		Flags: []cli.Flag{
			repoFlag(&repo),
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Target branch (auto-detect from HEAD if not specified)",
				Sources:     cli.EnvVars("LINEAGE_BRANCH"),
				Destination: &branch,
			},
			&cli.StringFlag{
				Name:        "head",
				Usage:       "Head commit (auto-detect from HEAD if not specified)",
				Sources:     cli.EnvVars("LINEAGE_HEAD_COMMIT"),
				Destination: &head,
			},
			&cli.StringFlag{
				Name:        "baseline",
				Usage:       "Baseline commit to compare with. origin/master is used if not specified",
				Sources:     cli.EnvVars("LINEAGE_BASELINE_COMMIT"),
				Destination: &baseline,
			},
			&cli.BoolFlag{
				Name:        "refresh",
				Usage:       "Compare with origin/master even if baseline is specified",
				Sources:     cli.EnvVars("LINEAGE_REFRESH"),
				Destination: &refresh,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			meta := RepositoryMetadata{
				Branch:     types.BranchName(branch),
				HeadCommit: types.CommitSHA(head),
			}
			if err := AutoDetectRepositoryMetadata(repo, &meta); err != nil {
				return err
			}
			if meta.Branch == "" {
				return goerr.Wrap(types.ErrInvalidOption, "branch is not specified and HEAD is detached")
			}

			uc := usecase.New(infra.New())
			changes, err := uc.ResolveBranchChanges(ctx, &model.ResolveBranchChangesInput{
				RepositoryPath: repo,
				Branch:         meta.Branch,
				HeadCommit:     meta.HeadCommit,
				Refresh:        refresh,
				BaselineCommit: types.CommitSHA(baseline),
			})
			if err != nil {
				return err
			}

			return writeJSON(x.out, changes)
		},
	}
}

func (x *CLI) mergeBaseCommand() *cli.Command {
	var (
		repo   string
		branch string
	)

	return &cli.Command{
		Name:  "merge-base",
		Usage: "Print the common ancestor of master and a branch. Nothing is printed if not found",
		Flags: []cli.Flag{
			repoFlag(&repo),
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Target branch",
				Required:    true,
				Sources:     cli.EnvVars("LINEAGE_BRANCH"),
				Destination: &branch,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New())
			sha := uc.MergeBase(ctx, repo, types.BranchName(branch))
			if sha.IsEmpty() {
				return nil
			}
			return writeLine(x.out, sha)
		},
	}
}

func (x *CLI) checkoutCommand() *cli.Command {
	var (
		repo string
		ref  string
	)

	return &cli.Command{
		Name:  "checkout",
		Usage: "Checkout a branch or commit and pull it",
		Flags: []cli.Flag{
			repoFlag(&repo),
			&cli.StringFlag{
				Name:        "ref",
				Usage:       "Branch name or commit SHA",
				Required:    true,
				Destination: &ref,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New())
			if !uc.CheckoutCommit(ctx, repo, ref) {
				return goerr.Wrap(types.ErrProcessFailed, "checkout failed", goerr.V("repo", repo), goerr.V("ref", ref))
			}
			logging.From(ctx).Debug("checkout completed", slog.String("ref", ref))
			return nil
		},
	}
}
