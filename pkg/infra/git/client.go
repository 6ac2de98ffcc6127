package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

// Client runs the git binary against an explicit working copy with `git -C`.
// The process working directory is never changed.
type Client struct {
	binary string
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

// WithBinary sets path of the git executable. Default is "git" resolved from PATH.
func WithBinary(path string) Option {
	return func(x *Client) {
		x.binary = path
	}
}

func New(options ...Option) *Client {
	x := &Client{binary: "git"}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// run executes git in repo and returns stdout. A non-zero exit status or any
// output on stderr is treated as failure.
func (x *Client) run(ctx context.Context, repo string, args ...string) (string, error) {
	logger := logging.From(ctx)
	fullArgs := append([]string{"-C", repo}, args...)
	logger.Debug("run git command", slog.String("repo", repo), slog.Any("args", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, x.binary, fullArgs...) // #nosec G204 arguments are never passed to a shell
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	scanner := bufio.NewScanner(bytes.NewReader(stdout.Bytes()))
	for scanner.Scan() {
		logger.Debug("git stdout", slog.String("line", scanner.Text()))
	}

	if runErr != nil || stderr.Len() > 0 {
		exitCode := 0
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		var cause error = types.ErrProcessFailed
		if runErr != nil && exitErr == nil {
			// e.g. binary not found or context canceled
			cause = errors.Join(types.ErrProcessFailed, runErr)
		}

		return "", goerr.Wrap(cause, "git command failed",
			goerr.V("repo", repo),
			goerr.V("args", strings.Join(args, " ")),
			goerr.V("exit_code", exitCode),
			goerr.V("stdout", stdout.String()),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}

func (x *Client) Fetch(ctx context.Context, repo string) error {
	_, err := x.run(ctx, repo, "fetch", "-q")
	return err
}

func (x *Client) Checkout(ctx context.Context, repo string, ref string) error {
	_, err := x.run(ctx, repo, "checkout", "-q", ref)
	return err
}

// Pull fast-forwards the current branch. Without remote and branch the upstream is pulled.
func (x *Client) Pull(ctx context.Context, repo string, remote string, branch types.BranchName) error {
	args := []string{"pull", "-q", "--ff-only"}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch.String())
		}
	}
	_, err := x.run(ctx, repo, args...)
	return err
}

func (x *Client) MergeBase(ctx context.Context, repo string, a, b string) (types.CommitSHA, error) {
	out, err := x.run(ctx, repo, "merge-base", a, b)
	if err != nil {
		return "", err
	}

	sha := strings.TrimSpace(out)
	if sha == "" {
		return "", goerr.Wrap(types.ErrInvalidResponse, "merge-base returned no commit",
			goerr.V("a", a), goerr.V("b", b))
	}
	return types.CommitSHA(sha), nil
}

func (x *Client) DiffTree(ctx context.Context, repo string, from, to string) (string, error) {
	return x.run(ctx, repo, "diff-tree", "--no-commit-id", "--name-status", "-r", from, "-r", to)
}
