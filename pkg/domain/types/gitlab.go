package types

import (
	"log/slog"
	"strconv"
)

type (
	// ProjectID is a numeric GitLab project ID or a URL-encodable namespace path
	ProjectID    string
	PipelineID   int
	JobID        int
	JobName      string
	RefName      string
	GitLabURL    string
	GitLabToken  string
	TriggerToken string
)

func (x ProjectID) String() string {
	return string(x)
}

func (x PipelineID) String() string {
	return strconv.Itoa(int(x))
}

func (x JobName) String() string {
	return string(x)
}

func (x RefName) String() string {
	return string(x)
}

func (x GitLabToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitLabToken) String() string {
	return "***********"
}

func (x TriggerToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x TriggerToken) String() string {
	return "***********"
}

// PipelineStatus is shared by pipelines and jobs
type PipelineStatus string

const (
	PipelineStatusCreated            PipelineStatus = "created"
	PipelineStatusWaitingForResource PipelineStatus = "waiting_for_resource"
	PipelineStatusPreparing          PipelineStatus = "preparing"
	PipelineStatusPending            PipelineStatus = "pending"
	PipelineStatusRunning            PipelineStatus = "running"
	PipelineStatusSuccess            PipelineStatus = "success"
	PipelineStatusFailed             PipelineStatus = "failed"
	PipelineStatusCanceled           PipelineStatus = "canceled"
	PipelineStatusSkipped            PipelineStatus = "skipped"
	PipelineStatusManual             PipelineStatus = "manual"
	PipelineStatusScheduled          PipelineStatus = "scheduled"
)

func (x PipelineStatus) String() string {
	return string(x)
}

func (x PipelineStatus) IsSuccess() bool {
	return x == PipelineStatusSuccess
}
