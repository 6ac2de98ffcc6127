package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/secmon-lab/lineage/pkg/utils/safe"
)

// DumpSeparator separates fields of a dump file
const DumpSeparator = ';'

func (x *UseCase) Exec(ctx context.Context, query string, args ...any) error {
	wh, err := x.warehouse()
	if err != nil {
		return err
	}
	return wh.Exec(ctx, query, args...)
}

func (x *UseCase) CallProcedure(ctx context.Context, name string, args ...any) error {
	wh, err := x.warehouse()
	if err != nil {
		return err
	}
	return wh.CallProcedure(ctx, name, args...)
}

// QueryColumns returns values of each column in row order, keyed by column name
func (x *UseCase) QueryColumns(ctx context.Context, query string, args ...any) (map[string][]any, error) {
	wh, err := x.warehouse()
	if err != nil {
		return nil, err
	}

	table, err := wh.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return table.ColumnValues(), nil
}

// QueryRows returns the result as text. NULL becomes an empty string and
// trailing spaces are removed.
func (x *UseCase) QueryRows(ctx context.Context, query string, args ...any) ([][]string, error) {
	wh, err := x.warehouse()
	if err != nil {
		return nil, err
	}

	table, err := wh.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, formatRow(row))
	}
	return rows, nil
}

// DumpToFile writes the query result to path as a header line of column names
// followed by one line per row. An existing file at path is removed first and
// no file is created for an empty result. It returns the number of rows written.
func (x *UseCase) DumpToFile(ctx context.Context, query string, path string) (int, error) {
	wh, err := x.warehouse()
	if err != nil {
		return 0, err
	}

	path = filepath.Clean(path)
	safe.RemoveIfExists(ctx, path)

	table, err := wh.Query(ctx, query)
	if err != nil {
		return 0, err
	}

	logger := logging.From(ctx).With(slog.String("path", path))
	if len(table.Rows) == 0 {
		logger.Info("Query returned no rows, dump file is not written")
		return 0, nil
	}

	fd, err := os.Create(path)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create dump file", goerr.V("path", path))
	}
	defer safe.Close(ctx, fd)

	w := csv.NewWriter(fd)
	w.Comma = DumpSeparator
	if err := w.Write(table.Columns); err != nil {
		return 0, goerr.Wrap(err, "failed to write dump header", goerr.V("path", path))
	}
	for _, row := range table.Rows {
		if err := w.Write(formatRow(row)); err != nil {
			return 0, goerr.Wrap(err, "failed to write dump row", goerr.V("path", path))
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, goerr.Wrap(err, "failed to flush dump file", goerr.V("path", path))
	}

	logger.Info("Dumped query result", slog.Int("rows", len(table.Rows)))
	return len(table.Rows), nil
}

func formatRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimRight(formatValue(v), " ")
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.DateTime)
	default:
		return fmt.Sprint(val)
	}
}
