package analysis

import (
	"strings"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// RoleSet maps raw column names to the semantic roles the assembler cares
// about: identity (who/what to rank), value (what to sum) and date (what to
// trend over). Matching is a case-insensitive substring check against a fixed
// list of known name fragments, so the policy stays testable in isolation.
type RoleSet struct {
	Identity []string
	Value    []string
	Date     []string
}

// DefaultRoles covers the column vocabularies of the supported business
// datasets, in both English and Portuguese.
func DefaultRoles() RoleSet {
	return RoleSet{
		Identity: []string{"seller", "vendedor", "product", "produto", "region", "regiao", "categor", "customer", "cliente"},
		Value:    []string{"net_value", "valor_liquido", "revenue", "receita", "net_profit", "lucro_liquido", "amount", "total", "value", "valor"},
		Date:     []string{"date", "data", "month", "mes", "day", "period"},
	}
}

func matchesAny(column string, fragments []string) bool {
	lower := strings.ToLower(column)
	for _, f := range fragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// IdentityColumns returns the table's identity-role columns in sorted
// column order.
func (r RoleSet) IdentityColumns(table domain.Table) []string {
	var cols []string
	for _, col := range table.Columns() {
		if matchesAny(col, r.Identity) {
			cols = append(cols, col)
		}
	}
	return cols
}

// ValueColumn picks the table's value-role column. Fragments are checked in
// declaration order so a net-value column wins over a generic amount column.
// The column must actually hold numeric data.
func (r RoleSet) ValueColumn(table domain.Table) (string, bool) {
	for _, f := range r.Value {
		for _, col := range table.Columns() {
			if !strings.Contains(strings.ToLower(col), f) {
				continue
			}
			if columnIsNumeric(table, col) {
				return col, true
			}
		}
	}
	return "", false
}

// DateColumn picks the first date-role column that holds time values.
func (r RoleSet) DateColumn(table domain.Table) (string, bool) {
	for _, col := range table.Columns() {
		if !matchesAny(col, r.Date) {
			continue
		}
		for _, row := range table.Rows {
			if _, ok := domain.AsTime(row[col]); ok {
				return col, true
			}
		}
	}
	return "", false
}

// PeriodColumn is like DateColumn but also accepts non-time period keys, e.g.
// "2024-01" month strings in financial data.
func (r RoleSet) PeriodColumn(table domain.Table) (string, bool) {
	if col, ok := r.DateColumn(table); ok {
		return col, true
	}
	for _, col := range table.Columns() {
		if matchesAny(col, r.Date) {
			return col, true
		}
	}
	return "", false
}

func columnIsNumeric(table domain.Table, col string) bool {
	for _, row := range table.Rows {
		if _, ok := domain.AsNumber(row[col]); ok {
			return true
		}
	}
	return false
}
