package domain

import (
	"sort"
	"time"
)

// Row maps a column name to a cell value. Cell values are one of
// string, float64, int or time.Time.
type Row map[string]any

// Table is an ordered sequence of rows sharing one column schema.
// Analyzer and assembler operations treat it as read-only.
type Table struct {
	Rows []Row
}

// Dataset pairs a sheet base name with its table. Report assembly
// processes datasets in slice order, which keeps output deterministic.
type Dataset struct {
	Name  string
	Table Table
}

// Columns returns the table's column names in sorted order.
// An empty table has no columns.
func (t Table) Columns() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.Rows[0]))
	for name := range t.Rows[0] {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// HasColumn reports whether the column exists in the table's schema.
func (t Table) HasColumn(name string) bool {
	if len(t.Rows) == 0 {
		return false
	}
	_, ok := t.Rows[0][name]
	return ok
}

// AsNumber coerces a cell value to float64.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsTime coerces a cell value to time.Time.
func AsTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}
