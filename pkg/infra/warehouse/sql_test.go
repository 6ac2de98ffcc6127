package warehouse_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra/warehouse"
)

func openSQLite(t *testing.T) *warehouse.SQL {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "warehouse.db")
	db := gt.R1(warehouse.Open(ctx, types.WarehouseDriverSQLite, path)).NoError(t)
	t.Cleanup(func() { gt.NoError(t, db.Close()) })
	return db
}

func TestSQLExecAndQuery(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	gt.NoError(t, db.Exec(ctx, `CREATE TABLE releases (code CHAR(8), label VARCHAR(16), build INTEGER)`))
	gt.NoError(t, db.Exec(ctx, `INSERT INTO releases VALUES (?, ?, ?)`, "R1   ", "first  ", 10))
	gt.NoError(t, db.Exec(ctx, `INSERT INTO releases VALUES (?, ?, ?)`, "R2", nil, 11))

	table := gt.R1(db.Query(ctx, `SELECT code, label, build FROM releases ORDER BY build`)).NoError(t)
	gt.V(t, table.Columns).Equal([]string{"code", "label", "build"})
	gt.A(t, table.Rows).Length(2)

	t.Run("fixed width character column is right-trimmed", func(t *testing.T) {
		gt.V(t, table.Rows[0][0]).Equal("R1")
	})

	t.Run("variable width column keeps trailing spaces", func(t *testing.T) {
		gt.V(t, table.Rows[0][1]).Equal("first  ")
	})

	t.Run("null is returned as nil", func(t *testing.T) {
		gt.V(t, table.Rows[1][1]).Equal(nil)
	})

	t.Run("integers are returned as int64", func(t *testing.T) {
		gt.V(t, table.Rows[1][2]).Equal(int64(11))
	})
}

func TestSQLQueryEmpty(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	gt.NoError(t, db.Exec(ctx, `CREATE TABLE empty_table (id INTEGER)`))
	table := gt.R1(db.Query(ctx, `SELECT id FROM empty_table`)).NoError(t)
	gt.V(t, table.Columns).Equal([]string{"id"})
	gt.V(t, len(table.Rows)).Equal(0)
}

func TestSQLExecFailure(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	gt.Error(t, db.Exec(ctx, `INSERT INTO missing_table VALUES (1)`))
	_, err := db.Query(ctx, `SELECT * FROM missing_table`)
	gt.Error(t, err)
}

func TestSQLCallProcedure(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	t.Run("not supported by sqlite", func(t *testing.T) {
		err := db.CallProcedure(ctx, "refresh_stats", 1)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("invalid procedure name", func(t *testing.T) {
		err := db.CallProcedure(ctx, "x; DROP TABLE y")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := warehouse.Open(context.Background(), "mysql", "dsn")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
