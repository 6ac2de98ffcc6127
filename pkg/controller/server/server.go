package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/errutil"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to marshal response", goerr.Wrap(err, "failed to marshal response"))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, types.ErrValidationFailed) || errors.Is(err, types.ErrInvalidOption) {
		logging.From(r.Context()).Warn(msg, slog.Any("error", err))
		writeJSON(w, r, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	errutil.HandleError(r.Context(), msg, err)
	writeJSON(w, r, http.StatusInternalServerError, &errorResponse{Error: "internal error"})
}

type previousSHAResponse struct {
	Found    bool            `json:"found"`
	SHA      types.CommitSHA `json:"sha"`
	Pipeline *model.Pipeline `json:"pipeline,omitempty"`
}

type jobSuccessResponse struct {
	PipelineID types.PipelineID `json:"pipeline_id"`
	Job        types.JobName    `json:"job"`
	Success    bool             `json:"success"`
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api/v1/projects/{projectID}", func(r chi.Router) {
		r.Get("/previous-sha", func(w http.ResponseWriter, r *http.Request) {
			input, err := parsePreviousSHAQuery(r)
			if err != nil {
				writeError(w, r, "invalid previous-sha request", err)
				return
			}

			pipeline, err := uc.FindPreviousSuccess(r.Context(), input)
			if err != nil {
				writeError(w, r, "fail to find previous successful pipeline", err)
				return
			}

			resp := &previousSHAResponse{}
			if pipeline != nil {
				resp.Found = true
				resp.SHA = pipeline.SHA
				resp.Pipeline = pipeline
			}
			writeJSON(w, r, http.StatusOK, resp)
		})

		r.Get("/pipelines/{pipelineID}/jobs/{jobName}/success", func(w http.ResponseWriter, r *http.Request) {
			projectID := types.ProjectID(chi.URLParam(r, "projectID"))
			jobName := types.JobName(chi.URLParam(r, "jobName"))
			pipelineID, err := strconv.Atoi(chi.URLParam(r, "pipelineID"))
			if err != nil {
				writeError(w, r, "invalid pipeline ID",
					goerr.Wrap(types.ErrValidationFailed, "pipeline ID must be a number", goerr.V("value", chi.URLParam(r, "pipelineID"))))
				return
			}

			ok, err := uc.HasSuccessfulJob(r.Context(), projectID, types.PipelineID(pipelineID), jobName)
			if err != nil {
				writeError(w, r, "fail to look up job", err)
				return
			}

			writeJSON(w, r, http.StatusOK, &jobSuccessResponse{
				PipelineID: types.PipelineID(pipelineID),
				Job:        jobName,
				Success:    ok,
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func parsePreviousSHAQuery(r *http.Request) (*model.FindPreviousSuccessInput, error) {
	q := r.URL.Query()
	input := &model.FindPreviousSuccessInput{
		ProjectID:    types.ProjectID(chi.URLParam(r, "projectID")),
		CurrentSHA:   types.CommitSHA(q.Get("sha")),
		Ref:          types.RefName(q.Get("ref")),
		CheckJobName: types.JobName(q.Get("job")),
	}

	if v := q.Get("any_success"); v != "" {
		anySuccess, err := strconv.ParseBool(v)
		if err != nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "any_success must be a boolean", goerr.V("value", v))
		}
		input.CheckAnyPipelineSuccess = anySuccess
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	return input, nil
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
