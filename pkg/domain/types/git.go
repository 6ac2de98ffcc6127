package types

type (
	CommitSHA  string
	BranchName string
)

const (
	// DefaultBranch is the branch every feature branch is compared with
	DefaultBranch BranchName = "master"

	// DefaultRemote is the remote whose default branch tip is used as a baseline
	DefaultRemote = "origin"
)

func (x CommitSHA) String() string {
	return string(x)
}

// IsEmpty reports whether the SHA is the "not found" value
func (x CommitSHA) IsEmpty() bool {
	return x == ""
}

func (x BranchName) String() string {
	return string(x)
}

// Remote returns the remote tracking ref name of the branch, e.g. origin/master
func (x BranchName) Remote() string {
	return DefaultRemote + "/" + string(x)
}

// ChangeKind is a normalized git name-status letter
type ChangeKind string

const (
	ChangeKindAdded       ChangeKind = "added"
	ChangeKindModified    ChangeKind = "modified"
	ChangeKindDeleted     ChangeKind = "deleted"
	ChangeKindRenamed     ChangeKind = "renamed"
	ChangeKindCopied      ChangeKind = "copied"
	ChangeKindTypeChanged ChangeKind = "type_changed"
	ChangeKindUnmerged    ChangeKind = "unmerged"
	ChangeKindUnknown     ChangeKind = "unknown"
)

// ChangeKindFromStatus converts a diff-tree --name-status letter such as "M" or "R100" into ChangeKind
func ChangeKindFromStatus(status string) ChangeKind {
	if status == "" {
		return ChangeKindUnknown
	}

	switch status[0] {
	case 'A':
		return ChangeKindAdded
	case 'M':
		return ChangeKindModified
	case 'D':
		return ChangeKindDeleted
	case 'R':
		return ChangeKindRenamed
	case 'C':
		return ChangeKindCopied
	case 'T':
		return ChangeKindTypeChanged
	case 'U':
		return ChangeKindUnmerged
	default:
		return ChangeKindUnknown
	}
}
