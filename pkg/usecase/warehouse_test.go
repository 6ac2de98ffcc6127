package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/domain/mock"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/infra"
	"github.com/secmon-lab/lineage/pkg/usecase"
)

func newWarehouseUseCase(table *model.Table) (*usecase.UseCase, *mock.WarehouseMock) {
	wh := &mock.WarehouseMock{
		QueryFunc: func(ctx context.Context, query string, args ...any) (*model.Table, error) {
			return table, nil
		},
		ExecFunc: func(ctx context.Context, query string, args ...any) error {
			return nil
		},
		CallProcedureFunc: func(ctx context.Context, name string, args ...any) error {
			return nil
		},
	}
	return usecase.New(infra.New(infra.WithWarehouse(wh))), wh
}

var releaseTable = &model.Table{
	Columns: []string{"code", "label", "build", "released_at"},
	Rows: [][]any{
		{"R1", "first  ", int64(10), time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"R2", nil, int64(11), nil},
	},
}

func TestQueryColumns(t *testing.T) {
	uc, wh := newWarehouseUseCase(releaseTable)

	columns := gt.R1(uc.QueryColumns(context.Background(), "SELECT * FROM releases WHERE build > ?", 5)).NoError(t)
	gt.V(t, columns["code"]).Equal([]any{"R1", "R2"})
	gt.V(t, columns["build"]).Equal([]any{int64(10), int64(11)})
	gt.V(t, wh.QueryCalls()[0].Args).Equal([]any{5})
}

func TestQueryRows(t *testing.T) {
	uc, _ := newWarehouseUseCase(releaseTable)

	rows := gt.R1(uc.QueryRows(context.Background(), "SELECT * FROM releases")).NoError(t)
	gt.V(t, rows).Equal([][]string{
		{"R1", "first", "10", "2024-01-02 03:04:05"},
		{"R2", "", "11", ""},
	})
}

func TestDumpToFile(t *testing.T) {
	ctx := context.Background()

	t.Run("header and rows separated by semicolon", func(t *testing.T) {
		uc, _ := newWarehouseUseCase(releaseTable)
		path := filepath.Join(t.TempDir(), "releases.csv")

		n := gt.R1(uc.DumpToFile(ctx, "SELECT * FROM releases", path)).NoError(t)
		gt.V(t, n).Equal(2)

		data := gt.R1(os.ReadFile(path)).NoError(t)
		gt.V(t, string(data)).Equal("code;label;build;released_at\nR1;first;10;2024-01-02 03:04:05\nR2;;11;\n")
	})

	t.Run("empty result removes old file and writes nothing", func(t *testing.T) {
		uc, _ := newWarehouseUseCase(&model.Table{Columns: []string{"code"}})
		path := filepath.Join(t.TempDir(), "releases.csv")
		gt.NoError(t, os.WriteFile(path, []byte("stale\n"), 0600))

		n := gt.R1(uc.DumpToFile(ctx, "SELECT code FROM releases", path)).NoError(t)
		gt.V(t, n).Equal(0)

		_, err := os.Stat(path)
		gt.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("query failure", func(t *testing.T) {
		uc, wh := newWarehouseUseCase(nil)
		wh.QueryFunc = func(ctx context.Context, query string, args ...any) (*model.Table, error) {
			return nil, errors.New("ORA-00942: table or view does not exist")
		}
		_, err := uc.DumpToFile(ctx, "SELECT * FROM missing", filepath.Join(t.TempDir(), "x.csv"))
		gt.Error(t, err)
	})
}

func TestExecAndCallProcedure(t *testing.T) {
	uc, wh := newWarehouseUseCase(nil)
	ctx := context.Background()

	gt.NoError(t, uc.Exec(ctx, "DELETE FROM releases WHERE build < ?", 3))
	gt.V(t, wh.ExecCalls()[0].Query).Equal("DELETE FROM releases WHERE build < ?")

	gt.NoError(t, uc.CallProcedure(ctx, "etl.refresh", "2024-01-01"))
	gt.V(t, wh.CallProcedureCalls()[0].Name).Equal("etl.refresh")
	gt.V(t, wh.CallProcedureCalls()[0].Args).Equal([]any{"2024-01-01"})
}
