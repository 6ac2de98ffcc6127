package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
)

// Pipeline is a read-only projection of one CI pipeline run
type Pipeline struct {
	ID        types.PipelineID     `json:"id"`
	SHA       types.CommitSHA      `json:"sha"`
	Ref       types.RefName        `json:"ref"`
	Status    types.PipelineStatus `json:"status"`
	WebURL    string               `json:"web_url,omitempty"`
	CreatedAt time.Time            `json:"created_at,omitempty"`
}

type Job struct {
	ID     types.JobID          `json:"id"`
	Name   types.JobName        `json:"name"`
	Status types.PipelineStatus `json:"status"`
	Stage  string               `json:"stage,omitempty"`
}

// PipelineStatus is the status of a single pipeline with its human readable label
type PipelineStatus struct {
	Status         types.PipelineStatus `json:"status"`
	DetailedStatus string               `json:"detailed_status"`
}

// CommitDiff is one file entry of a commit diff returned by the CI API
type CommitDiff struct {
	OldPath     string `json:"old_path"`
	NewPath     string `json:"new_path"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
}

// Kind returns the change kind of the diff entry
func (x CommitDiff) Kind() types.ChangeKind {
	switch {
	case x.NewFile:
		return types.ChangeKindAdded
	case x.DeletedFile:
		return types.ChangeKindDeleted
	case x.RenamedFile:
		return types.ChangeKindRenamed
	default:
		return types.ChangeKindModified
	}
}

// UnknownTotalPages is the TotalPages of a response that does not report a page count
const UnknownTotalPages = -1

// PageInfo carries pagination metadata of one listing response. Page is 1-based.
type PageInfo struct {
	Page       int
	TotalPages int
}

type TriggerPipelineInput struct {
	Ref       types.RefName
	Token     types.TriggerToken `masq:"secret"`
	Variables map[string]string
}

func (x *TriggerPipelineInput) Validate() error {
	if x.Ref == "" {
		return goerr.Wrap(types.ErrValidationFailed, "ref is empty")
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrValidationFailed, "trigger token is empty")
	}
	return nil
}
