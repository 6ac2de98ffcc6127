package gitlab_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra/gitlab"
)

func writeJSON(t *testing.T, w http.ResponseWriter, totalPages string, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if totalPages != "" {
		w.Header().Set("X-Total-Pages", totalPages)
	}
	gt.NoError(t, json.NewEncoder(w).Encode(body))
}

func newServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, options ...gitlab.Option) *gitlab.Client {
	t.Helper()
	return gt.R1(gitlab.New(types.GitLabURL(srv.URL), "test-token", options...)).NoError(t)
}

func TestListPipelines(t *testing.T) {
	var query map[string]string
	var token string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines", func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("PRIVATE-TOKEN")
		query = map[string]string{
			"ref":      r.URL.Query().Get("ref"),
			"per_page": r.URL.Query().Get("per_page"),
			"page":     r.URL.Query().Get("page"),
		}
		writeJSON(t, w, "3", []map[string]any{
			{"id": 103, "sha": "c3", "ref": "master", "status": "running"},
			{"id": 102, "sha": "c2", "ref": "master", "status": "success", "web_url": "https://gitlab.example.com/p/102"},
		})
	})
	client := newClient(t, newServer(t, mux))

	pipelines, info, err := client.ListPipelines(context.Background(), &interfaces.ListPipelinesInput{
		ProjectID: "42",
		Ref:       "master",
		PerPage:   100,
		Page:      2,
	})
	gt.NoError(t, err)

	gt.V(t, token).Equal("test-token")
	gt.V(t, query).Equal(map[string]string{"ref": "master", "per_page": "100", "page": "2"})
	gt.V(t, info.TotalPages).Equal(3)
	gt.V(t, info.Page).Equal(2)
	gt.A(t, pipelines).Length(2)
	gt.V(t, pipelines[0].ID).Equal(types.PipelineID(103))
	gt.V(t, pipelines[1].SHA).Equal(types.CommitSHA("c2"))
	gt.V(t, pipelines[1].Status).Equal(types.PipelineStatusSuccess)
	gt.V(t, pipelines[1].WebURL).Equal("https://gitlab.example.com/p/102")
}

func TestListPipelinesWithoutTotalPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, "", []map[string]any{})
	})
	client := newClient(t, newServer(t, mux))

	_, _, err := client.ListPipelines(context.Background(), &interfaces.ListPipelinesInput{
		ProjectID: "42",
		Ref:       "master",
		Page:      1,
	})
	gt.True(t, errors.Is(err, types.ErrInvalidResponse))
}

func TestListPipelinesWithoutTotalPagesAfterFirstPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, "", []map[string]any{
			{"id": 5, "sha": "c5", "ref": "master", "status": "success"},
		})
	})
	client := newClient(t, newServer(t, mux))

	pipelines, info, err := client.ListPipelines(context.Background(), &interfaces.ListPipelinesInput{
		ProjectID: "42",
		Ref:       "master",
		Page:      2,
	})
	gt.NoError(t, err)
	gt.A(t, pipelines).Length(1)
	gt.V(t, info.Page).Equal(2)
	gt.V(t, info.TotalPages).Equal(model.UnknownTotalPages)
}

func TestListPipelineJobs(t *testing.T) {
	var scope []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines/7/jobs", func(w http.ResponseWriter, r *http.Request) {
		scope = r.URL.Query()["scope[]"]
		writeJSON(t, w, "1", []map[string]any{
			{"id": 1, "name": "build", "status": "success", "stage": "build"},
			{"id": 2, "name": "test", "status": "success", "stage": "test"},
		})
	})
	client := newClient(t, newServer(t, mux))

	jobs, info, err := client.ListPipelineJobs(context.Background(), &interfaces.ListPipelineJobsInput{
		ProjectID:  "42",
		PipelineID: 7,
		Scope:      []types.PipelineStatus{types.PipelineStatusSuccess},
		Page:       1,
	})
	gt.NoError(t, err)

	gt.V(t, scope).Equal([]string{"success"})
	gt.V(t, info.TotalPages).Equal(1)
	gt.A(t, jobs).Length(2)
	gt.V(t, jobs[1].Name).Equal(types.JobName("test"))
	gt.V(t, jobs[1].ID).Equal(types.JobID(2))
}

func TestGetCommitDiff(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/repository/commits/abc123/diff", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, "1", []map[string]any{
			{"old_path": "a.go", "new_path": "a.go"},
			{"old_path": "old.go", "new_path": "new.go", "renamed_file": true},
			{"old_path": "gone.go", "new_path": "gone.go", "deleted_file": true},
		})
	})
	client := newClient(t, newServer(t, mux))

	diffs, _, err := client.GetCommitDiff(context.Background(), &interfaces.GetCommitDiffInput{
		ProjectID: "42",
		SHA:       "abc123",
		Page:      1,
	})
	gt.NoError(t, err)
	gt.A(t, diffs).Length(3)
	gt.V(t, diffs[0].Kind()).Equal(types.ChangeKindModified)
	gt.V(t, diffs[1].Kind()).Equal(types.ChangeKindRenamed)
	gt.V(t, diffs[1].NewPath).Equal("new.go")
	gt.V(t, diffs[2].Kind()).Equal(types.ChangeKindDeleted)
}

func TestGetPipeline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, "", map[string]any{
			"id":              7,
			"status":          "failed",
			"detailed_status": map[string]any{"label": "failed with warnings"},
		})
	})
	client := newClient(t, newServer(t, mux))

	status := gt.R1(client.GetPipeline(context.Background(), "42", 7)).NoError(t)
	gt.V(t, status.Status).Equal(types.PipelineStatusFailed)
	gt.V(t, status.DetailedStatus).Equal("failed with warnings")
}

func TestGetPipelineNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"404 Not found"}`))
	})
	client := newClient(t, newServer(t, mux))

	_, err := client.GetPipeline(context.Background(), "42", 7)
	gt.Error(t, err)
}

func TestTriggerPipeline(t *testing.T) {
	var body map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v4/projects/42/trigger/pipeline", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, "", map[string]any{
			"id":     99,
			"sha":    "c9",
			"ref":    "release",
			"status": "created",
		})
	})
	client := newClient(t, newServer(t, mux))

	pipeline, err := client.TriggerPipeline(context.Background(), "42", &model.TriggerPipelineInput{
		Ref:       "release",
		Token:     "trigger-token",
		Variables: map[string]string{"DEPLOY": "true"},
	})
	gt.NoError(t, err)

	gt.V(t, body["ref"]).Equal("release")
	gt.V(t, body["token"]).Equal("trigger-token")
	gt.V(t, pipeline.ID).Equal(types.PipelineID(99))
	gt.V(t, pipeline.Status).Equal(types.PipelineStatusCreated)
}

func TestTLSVerification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/projects/42/pipelines/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, "", map[string]any{"id": 7, "status": "success"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)

	t.Run("self-signed certificate is accepted by default", func(t *testing.T) {
		client := gt.R1(gitlab.New(types.GitLabURL(srv.URL), "token")).NoError(t)
		status := gt.R1(client.GetPipeline(context.Background(), "42", 7)).NoError(t)
		gt.True(t, status.Status.IsSuccess())
	})

	t.Run("self-signed certificate is rejected with verification", func(t *testing.T) {
		client := gt.R1(gitlab.New(types.GitLabURL(srv.URL), "token", gitlab.WithVerifyTLS(true))).NoError(t)
		_, err := client.GetPipeline(context.Background(), "42", 7)
		gt.Error(t, err)
	})
}
