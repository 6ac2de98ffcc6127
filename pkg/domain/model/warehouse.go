package model

// Table is a query result with column names in select order
type Table struct {
	Columns []string
	Rows    [][]any
}

// ColumnValues returns values grouped by column name, each in row order
func (x *Table) ColumnValues() map[string][]any {
	result := make(map[string][]any, len(x.Columns))
	if len(x.Rows) == 0 {
		return result
	}

	for i, col := range x.Columns {
		values := make([]any, 0, len(x.Rows))
		for _, row := range x.Rows {
			values = append(values, row[i])
		}
		result[col] = values
	}
	return result
}
