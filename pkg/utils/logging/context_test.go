package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

func TestWithAndFrom(t *testing.T) {
	t.Run("logger stored in context is returned", func(t *testing.T) {
		logger := slog.Default()
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})

	t.Run("default logger is returned without logger in context", func(t *testing.T) {
		retrieved := logging.From(context.Background())
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxRequestID(t *testing.T) {
	t.Run("new request ID is generated", func(t *testing.T) {
		reqID, ctx := logging.CtxRequestID(context.Background())
		gt.V(t, reqID.String()).NotEqual("")

		again, _ := logging.CtxRequestID(ctx)
		gt.V(t, again).Equal(reqID)
	})

	t.Run("different contexts get different IDs", func(t *testing.T) {
		id1, _ := logging.CtxRequestID(context.Background())
		id2, _ := logging.CtxRequestID(context.Background())
		gt.V(t, id1).NotEqual(id2)
	})
}

func TestWithRequest(t *testing.T) {
	base := context.Background()
	id, ctx := logging.WithRequest(base)

	stored, _ := logging.CtxRequestID(ctx)
	gt.V(t, stored).Equal(id)
	gt.False(t, logging.From(ctx) == logging.From(base))
}

func TestWithRequestID(t *testing.T) {
	ctx := logging.WithRequestID(context.Background(), "0b6f1f8e-3c1a-4d2e-9a51-6f0e2c7d8b90")

	id, ctx := logging.WithRequest(ctx)
	gt.V(t, id.String()).Equal("0b6f1f8e-3c1a-4d2e-9a51-6f0e2c7d8b90")

	again, _ := logging.WithRequest(ctx)
	gt.V(t, again).Equal(id)
}
