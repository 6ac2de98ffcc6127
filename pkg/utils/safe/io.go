package safe

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

// Close closes the resource and logs a warning on failure. io.EOF is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("Fail to close resource", slog.Any("error", err))
	}
}

// CloseRows closes sql.Rows and logs a warning on failure
func CloseRows(ctx context.Context, rows *sql.Rows) {
	if rows == nil {
		return
	}
	if err := rows.Close(); err != nil {
		logging.From(ctx).Warn("Fail to close rows", slog.Any("error", err))
	}
}

// RemoveIfExists removes the file. A missing file is not reported.
func RemoveIfExists(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.From(ctx).Warn("Fail to remove file", slog.String("path", path), slog.Any("error", err))
	}
}

// Rollback rolls back the transaction and logs a warning on failure. A committed transaction is ignored.
func Rollback(ctx context.Context, tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.From(ctx).Warn("Fail to rollback transaction", slog.Any("error", err))
	}
}
