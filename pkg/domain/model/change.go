package model

import (
	"bufio"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

// FileChanges maps a file path to every change kind observed for it, in diff order.
// Most paths have exactly one kind; a path listed more than once keeps all of them.
type FileChanges map[string][]types.ChangeKind

// Add records kind for path after any kind already observed
func (x FileChanges) Add(path string, kind types.ChangeKind) {
	x[path] = append(x[path], kind)
}

// Kind returns the last observed change kind of path
func (x FileChanges) Kind(path string) (types.ChangeKind, bool) {
	kinds, ok := x[path]
	if !ok || len(kinds) == 0 {
		return "", false
	}
	return kinds[len(kinds)-1], true
}

// Paths returns changed paths in lexical order
func (x FileChanges) Paths() []string {
	paths := make([]string, 0, len(x))
	for path := range x {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// ParseDiffTree parses output of `git diff-tree --no-commit-id --name-status -r`.
// Each line is "<status>\t<path>", or "<status>\t<src>\t<dst>" for renames and copies,
// in which case the destination path is recorded.
func ParseDiffTree(output string) (FileChanges, error) {
	changes := FileChanges{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			return nil, goerr.Wrap(types.ErrInvalidResponse, "unexpected diff-tree line",
				goerr.V("line", line),
				goerr.V("line_no", lineNo),
			)
		}

		kind := types.ChangeKindFromStatus(fields[0])
		path := fields[1]
		if (kind == types.ChangeKindRenamed || kind == types.ChangeKindCopied) && len(fields) >= 3 {
			path = fields[2]
		}
		changes.Add(path, kind)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read diff-tree output")
	}

	return changes, nil
}
