package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

// preProcess tags the request with an ID. A UUID in X-Request-ID, e.g. set by a
// CI job calling the API, is kept so both sides log the same ID.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := r.Context()
		if id, ok := types.ParseRequestID(r.Header.Get(requestIDHeader)); ok {
			base = logging.WithRequestID(base, id)
		}

		reqID, ctx := logging.WithRequest(base)
		logger := logging.From(ctx)
		w.Header().Set(requestIDHeader, reqID.String())

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
