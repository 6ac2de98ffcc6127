package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/secmon-lab/lineage/pkg/utils/safe"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// SQL is a warehouse reached through database/sql
type SQL struct {
	db     *sql.DB
	driver types.WarehouseDriver
}

var _ interfaces.Warehouse = (*SQL)(nil)

var sqlDriverNames = map[types.WarehouseDriver]string{
	types.WarehouseDriverOracle:   "oracle",
	types.WarehouseDriverPostgres: "postgres",
	types.WarehouseDriverSQLite:   "sqlite",
}

var procedureName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$#]*(\.[A-Za-z_][A-Za-z0-9_$#]*){0,2}$`)

// Open connects to the warehouse and checks the connection
func Open(ctx context.Context, driver types.WarehouseDriver, dsn string) (*SQL, error) {
	name, ok := sqlDriverNames[driver]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported warehouse driver", goerr.V("driver", driver))
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open warehouse", goerr.V("driver", driver))
	}
	if err := db.PingContext(ctx); err != nil {
		safe.Close(ctx, db)
		return nil, goerr.Wrap(err, "failed to connect warehouse", goerr.V("driver", driver))
	}

	return &SQL{db: db, driver: driver}, nil
}

func (x *SQL) Close() error {
	if err := x.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close warehouse")
	}
	return nil
}

// Exec runs a statement in its own transaction and commits it
func (x *SQL) Exec(ctx context.Context, query string, args ...any) error {
	logging.From(ctx).Debug("exec statement", slog.String("query", query), slog.Int("args", len(args)))

	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return goerr.Wrap(err, "failed to execute statement", goerr.V("query", query))
	}
	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit", goerr.V("query", query))
	}
	return nil
}

// Query returns all rows of the result. Values of fixed width character
// columns are right-trimmed and byte slices are returned as strings.
func (x *SQL) Query(ctx context.Context, query string, args ...any) (*model.Table, error) {
	logging.From(ctx).Debug("run query", slog.String("query", query), slog.Int("args", len(args)))

	rows, err := x.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to run query", goerr.V("query", query))
	}
	defer safe.CloseRows(ctx, rows)

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get column types", goerr.V("query", query))
	}

	table := &model.Table{Columns: make([]string, len(colTypes))}
	fixed := make([]bool, len(colTypes))
	for i, ct := range colTypes {
		table.Columns[i] = ct.Name()
		fixed[i] = isFixedChar(ct.DatabaseTypeName())
	}

	for rows.Next() {
		values := make([]any, len(colTypes))
		ptrs := make([]any, len(colTypes))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, goerr.Wrap(err, "failed to scan row", goerr.V("query", query))
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			if s, ok := v.(string); ok && fixed[i] {
				v = strings.TrimRight(s, " ")
			}
			values[i] = v
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read rows", goerr.V("query", query))
	}

	return table, nil
}

// CallProcedure invokes a stored procedure with positional arguments
func (x *SQL) CallProcedure(ctx context.Context, name string, args ...any) error {
	if !procedureName.MatchString(name) {
		return goerr.Wrap(types.ErrInvalidOption, "invalid procedure name", goerr.V("name", name))
	}

	placeholders := make([]string, len(args))
	var stmt string
	switch x.driver {
	case types.WarehouseDriverOracle:
		for i := range args {
			placeholders[i] = fmt.Sprintf(":%d", i+1)
		}
		stmt = fmt.Sprintf("BEGIN %s(%s); END;", name, strings.Join(placeholders, ", "))

	case types.WarehouseDriverPostgres:
		for i := range args {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		stmt = fmt.Sprintf("CALL %s(%s)", name, strings.Join(placeholders, ", "))

	default:
		return goerr.Wrap(types.ErrInvalidOption, "stored procedure is not supported by driver", goerr.V("driver", x.driver))
	}

	if _, err := x.db.ExecContext(ctx, stmt, args...); err != nil {
		return goerr.Wrap(err, "failed to call procedure", goerr.V("name", name), goerr.V("driver", x.driver))
	}
	return nil
}

func isFixedChar(typeName string) bool {
	t := strings.ToUpper(typeName)
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch strings.TrimSpace(t) {
	case "CHAR", "NCHAR", "BPCHAR", "CHARACTER":
		return true
	default:
		return false
	}
}
