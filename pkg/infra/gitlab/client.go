package gitlab

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const totalPagesHeader = "X-Total-Pages"

// Client is a GitLab v4 REST API client. Requests are never retried.
type Client struct {
	client *gitlab.Client

	baseURL    types.GitLabURL
	verifyTLS  bool
	httpClient *http.Client
}

var _ interfaces.GitLab = (*Client)(nil)

type Option func(*Client)

// WithVerifyTLS enables TLS certificate verification. It is disabled by
// default because internal GitLab instances often use self-signed certificates.
func WithVerifyTLS(verify bool) Option {
	return func(x *Client) {
		x.verifyTLS = verify
	}
}

// WithHTTPClient replaces the HTTP client. WithVerifyTLS is ignored when it is set.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL types.GitLabURL, token types.GitLabToken, options ...Option) (*Client, error) {
	x := &Client{baseURL: baseURL}
	for _, opt := range options {
		opt(x)
	}

	if x.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if !x.verifyTLS {
			transport.TLSClientConfig = &tls.Config{
				InsecureSkipVerify: true, // #nosec G402 opt-in verification with --gitlab-verify-tls
			}
		}
		x.httpClient = &http.Client{Transport: transport}
	}

	client, err := gitlab.NewClient(string(token),
		gitlab.WithBaseURL(string(baseURL)),
		gitlab.WithHTTPClient(x.httpClient),
		gitlab.WithoutRetries(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitLab client", goerr.V("base_url", baseURL))
	}
	x.client = client

	return x, nil
}

func pageInfo(resp *gitlab.Response, page int) (*model.PageInfo, error) {
	raw := resp.Header.Get(totalPagesHeader)
	if raw == "" && page > 1 {
		// GitLab omits the header for listings over 10,000 rows. Only the
		// first page has to report the count.
		return &model.PageInfo{Page: page, TotalPages: model.UnknownTotalPages}, nil
	}
	if raw == "" {
		return nil, goerr.Wrap(types.ErrInvalidResponse, "X-Total-Pages header is missing",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", resp.Request.URL.String()),
		)
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidResponse, "X-Total-Pages header is not a number",
			goerr.V("value", raw),
			goerr.V("url", resp.Request.URL.String()),
		)
	}

	return &model.PageInfo{Page: page, TotalPages: total}, nil
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (x *Client) ListPipelines(ctx context.Context, input *interfaces.ListPipelinesInput) ([]*model.Pipeline, *model.PageInfo, error) {
	opt := &gitlab.ListProjectPipelinesOptions{
		ListOptions: gitlab.ListOptions{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}
	if input.Ref != "" {
		opt.Ref = gitlab.Ptr(input.Ref.String())
	}

	pipelines, resp, err := x.client.Pipelines.ListProjectPipelines(input.ProjectID.String(), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list pipelines",
			goerr.V("project_id", input.ProjectID),
			goerr.V("ref", input.Ref),
			goerr.V("page", input.Page),
		)
	}

	info, err := pageInfo(resp, input.Page)
	if err != nil {
		return nil, nil, err
	}

	result := make([]*model.Pipeline, 0, len(pipelines))
	for _, p := range pipelines {
		result = append(result, &model.Pipeline{
			ID:        types.PipelineID(p.ID),
			SHA:       types.CommitSHA(p.SHA),
			Ref:       types.RefName(p.Ref),
			Status:    types.PipelineStatus(p.Status),
			WebURL:    p.WebURL,
			CreatedAt: timeValue(p.CreatedAt),
		})
	}

	logging.From(ctx).Debug("listed pipelines",
		slog.Any("project_id", input.ProjectID),
		slog.Int("page", input.Page),
		slog.Int("total_pages", info.TotalPages),
		slog.Int("count", len(result)),
	)

	return result, info, nil
}

func (x *Client) ListPipelineJobs(ctx context.Context, input *interfaces.ListPipelineJobsInput) ([]*model.Job, *model.PageInfo, error) {
	opt := &gitlab.ListJobsOptions{
		ListOptions: gitlab.ListOptions{
			Page: input.Page,
		},
	}
	if len(input.Scope) > 0 {
		scope := make([]gitlab.BuildStateValue, 0, len(input.Scope))
		for _, s := range input.Scope {
			scope = append(scope, gitlab.BuildStateValue(s))
		}
		opt.Scope = &scope
	}

	jobs, resp, err := x.client.Jobs.ListPipelineJobs(input.ProjectID.String(), int(input.PipelineID), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list pipeline jobs",
			goerr.V("project_id", input.ProjectID),
			goerr.V("pipeline_id", input.PipelineID),
			goerr.V("page", input.Page),
		)
	}

	info, err := pageInfo(resp, input.Page)
	if err != nil {
		return nil, nil, err
	}

	result := make([]*model.Job, 0, len(jobs))
	for _, j := range jobs {
		result = append(result, &model.Job{
			ID:     types.JobID(j.ID),
			Name:   types.JobName(j.Name),
			Status: types.PipelineStatus(j.Status),
			Stage:  j.Stage,
		})
	}

	return result, info, nil
}

func (x *Client) GetCommitDiff(ctx context.Context, input *interfaces.GetCommitDiffInput) ([]*model.CommitDiff, *model.PageInfo, error) {
	opt := &gitlab.GetCommitDiffOptions{
		ListOptions: gitlab.ListOptions{
			Page: input.Page,
		},
	}

	diffs, resp, err := x.client.Commits.GetCommitDiff(input.ProjectID.String(), input.SHA.String(), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get commit diff",
			goerr.V("project_id", input.ProjectID),
			goerr.V("sha", input.SHA),
			goerr.V("page", input.Page),
		)
	}

	info, err := pageInfo(resp, input.Page)
	if err != nil {
		return nil, nil, err
	}

	result := make([]*model.CommitDiff, 0, len(diffs))
	for _, d := range diffs {
		result = append(result, &model.CommitDiff{
			OldPath:     d.OldPath,
			NewPath:     d.NewPath,
			NewFile:     d.NewFile,
			RenamedFile: d.RenamedFile,
			DeletedFile: d.DeletedFile,
		})
	}

	return result, info, nil
}

func (x *Client) GetPipeline(ctx context.Context, projectID types.ProjectID, pipelineID types.PipelineID) (*model.PipelineStatus, error) {
	pipeline, _, err := x.client.Pipelines.GetPipeline(projectID.String(), int(pipelineID), gitlab.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pipeline",
			goerr.V("project_id", projectID),
			goerr.V("pipeline_id", pipelineID),
		)
	}

	status := &model.PipelineStatus{
		Status: types.PipelineStatus(pipeline.Status),
	}
	if pipeline.DetailedStatus != nil {
		status.DetailedStatus = pipeline.DetailedStatus.Label
	}
	return status, nil
}

func (x *Client) TriggerPipeline(ctx context.Context, projectID types.ProjectID, input *model.TriggerPipelineInput) (*model.Pipeline, error) {
	opt := &gitlab.RunPipelineTriggerOptions{
		Ref:       gitlab.Ptr(input.Ref.String()),
		Token:     gitlab.Ptr(string(input.Token)),
		Variables: input.Variables,
	}

	pipeline, _, err := x.client.PipelineTriggers.RunPipelineTrigger(projectID.String(), opt, gitlab.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to trigger pipeline",
			goerr.V("project_id", projectID),
			goerr.V("ref", input.Ref),
		)
	}

	return &model.Pipeline{
		ID:        types.PipelineID(pipeline.ID),
		SHA:       types.CommitSHA(pipeline.SHA),
		Ref:       types.RefName(pipeline.Ref),
		Status:    types.PipelineStatus(pipeline.Status),
		WebURL:    pipeline.WebURL,
		CreatedAt: timeValue(pipeline.CreatedAt),
	}, nil
}
