package safe_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/utils/safe"
)

type errorCloser struct{ called bool }

func (e *errorCloser) Close() error {
	e.called = true
	return io.ErrUnexpectedEOF
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("close valid reader", func(t *testing.T) {
		safe.Close(ctx, io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("close nil", func(t *testing.T) {
		safe.Close(ctx, nil)
	})

	t.Run("close failure is swallowed", func(t *testing.T) {
		c := &errorCloser{}
		safe.Close(ctx, c)
		gt.True(t, c.called)
	})
}

func TestCloseRows(t *testing.T) {
	safe.CloseRows(context.Background(), nil)
}

func TestRemoveIfExists(t *testing.T) {
	ctx := context.Background()

	t.Run("existing file is removed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dump.csv")
		gt.NoError(t, os.WriteFile(path, []byte("a;b\n"), 0600))

		safe.RemoveIfExists(ctx, path)

		_, err := os.Stat(path)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("missing file", func(t *testing.T) {
		safe.RemoveIfExists(ctx, filepath.Join(t.TempDir(), "none.csv"))
	})
}

func TestRollback(t *testing.T) {
	safe.Rollback(context.Background(), nil)
}
