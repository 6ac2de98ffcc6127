package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/lineage/pkg/domain/model"
)

func TestTableColumnValues(t *testing.T) {
	t.Run("values grouped by column", func(t *testing.T) {
		table := &model.Table{
			Columns: []string{"a", "b"},
			Rows:    [][]any{{1, "x"}, {2, "y"}},
		}
		gt.V(t, table.ColumnValues()).Equal(map[string][]any{
			"a": {1, 2},
			"b": {"x", "y"},
		})
	})

	t.Run("no rows gives empty mapping", func(t *testing.T) {
		table := &model.Table{Columns: []string{"a"}}
		gt.V(t, len(table.ColumnValues())).Equal(0)
	})
}
