package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo is a scratch repository for tests. Origin is a plain repository on
// disk and Work is a clone of it with "origin" configured as remote.
type GitRepo struct {
	t      *testing.T
	Origin string
	Work   string
}

// NewGitRepo creates origin with one commit on master and clones it. The test
// is skipped when the git binary is not available.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git command is not available, skipping test")
	}

	root := t.TempDir()
	r := &GitRepo{
		t:      t,
		Origin: filepath.Join(root, "origin"),
		Work:   filepath.Join(root, "work"),
	}

	r.Git(root, "init", "-q", "-b", "master", r.Origin)
	r.CommitFile(r.Origin, "README.md", "init\n")
	r.Git(root, "clone", "-q", r.Origin, r.Work)

	return r
}

// Git runs git in dir and returns trimmed stdout. Failure aborts the test.
func (r *GitRepo) Git(dir string, args ...string) string {
	r.t.Helper()

	base := []string{
		"-C", dir,
		"-c", "user.name=lineage",
		"-c", "user.email=lineage@example.com",
		"-c", "commit.gpgsign=false",
	}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, stderr.String())
	}
	return strings.TrimSpace(stdout.String())
}

// CommitFile writes content to name in dir, commits it and returns the new HEAD SHA
func (r *GitRepo) CommitFile(dir, name, content string) string {
	r.t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write file: %v", err)
	}
	r.Git(dir, "add", "-A")
	r.Git(dir, "commit", "-q", "-m", "update "+name)
	return r.Git(dir, "rev-parse", "HEAD")
}

// RemoveFile deletes name in dir, commits and returns the new HEAD SHA
func (r *GitRepo) RemoveFile(dir, name string) string {
	r.t.Helper()
	r.Git(dir, "rm", "-q", name)
	r.Git(dir, "commit", "-q", "-m", "remove "+name)
	return r.Git(dir, "rev-parse", "HEAD")
}

// Head returns HEAD SHA of dir
func (r *GitRepo) Head(dir string) string {
	r.t.Helper()
	return r.Git(dir, "rev-parse", "HEAD")
}
