package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

// ResolveBranchChanges updates the default branch of the working copy, switches
// to the target branch and lists files changed between the baseline and the
// head commit. The first failing git command aborts the sequence and the
// working copy stays on whatever ref was checked out at that point.
func (x *UseCase) ResolveBranchChanges(ctx context.Context, input *model.ResolveBranchChangesInput) (model.FileChanges, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo := input.RepositoryPath
	baseline := input.Baseline()
	git := x.clients.Git()

	logger := logging.From(ctx).With(
		slog.String("repo", repo),
		slog.Any("branch", input.Branch),
		slog.Any("head", input.HeadCommit),
		slog.String("baseline", baseline),
	)
	logger.Info("Resolving branch changes")

	if err := git.Fetch(ctx, repo); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch", goerr.V("repo", repo))
	}
	if err := git.Checkout(ctx, repo, types.DefaultBranch.String()); err != nil {
		return nil, goerr.Wrap(err, "failed to checkout default branch", goerr.V("repo", repo))
	}
	if err := git.Pull(ctx, repo, types.DefaultRemote, types.DefaultBranch); err != nil {
		return nil, goerr.Wrap(err, "failed to pull default branch", goerr.V("repo", repo))
	}
	if err := git.Checkout(ctx, repo, input.Branch.String()); err != nil {
		return nil, goerr.Wrap(err, "failed to checkout branch", goerr.V("repo", repo), goerr.V("branch", input.Branch))
	}

	out, err := git.DiffTree(ctx, repo, baseline, input.HeadCommit.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to diff commits",
			goerr.V("repo", repo),
			goerr.V("baseline", baseline),
			goerr.V("head", input.HeadCommit),
		)
	}

	changes, err := model.ParseDiffTree(out)
	if err != nil {
		return nil, err
	}

	logger.Info("Resolved branch changes", slog.Int("files", len(changes)))
	return changes, nil
}

// MergeBase returns the most recent common ancestor of the default branch and
// branch. Failure is logged and reported as an empty SHA.
func (x *UseCase) MergeBase(ctx context.Context, repo string, branch types.BranchName) types.CommitSHA {
	sha, err := x.clients.Git().MergeBase(ctx, repo, types.DefaultBranch.String(), branch.String())
	if err != nil {
		logging.From(ctx).Warn("Failed to find merge base",
			slog.String("repo", repo),
			slog.Any("branch", branch),
			slog.Any("error", err),
		)
		return ""
	}
	return sha
}

// CheckoutCommit checks out ref and pulls its upstream. It reports whether
// both steps succeeded; the cause of a failure is only logged.
func (x *UseCase) CheckoutCommit(ctx context.Context, repo string, ref string) bool {
	logger := logging.From(ctx).With(slog.String("repo", repo), slog.String("ref", ref))

	if err := x.clients.Git().Checkout(ctx, repo, ref); err != nil {
		logger.Warn("Failed to checkout", slog.Any("error", err))
		return false
	}
	if err := x.clients.Git().Pull(ctx, repo, "", ""); err != nil {
		logger.Warn("Failed to pull", slog.Any("error", err))
		return false
	}

	logger.Info("Checked out")
	return true
}
