package analysis

import (
	"fmt"
	"sort"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// Analyzer computes derived statistics over a single table. It holds the
// source table and nothing else; every operation returns a freshly built
// result, so concurrent calls over distinct tables are safe.
type Analyzer struct {
	table domain.Table
	roles RoleSet
}

func NewAnalyzer(table domain.Table) *Analyzer {
	return &Analyzer{table: table, roles: DefaultRoles()}
}

// SummaryStats computes the record count, the span of the first recognized
// date column, and min/max/mean/sum for every numeric column. Missing and
// non-numeric cells are excluded from the aggregates rather than counted as
// zero. An empty table yields a zero count with the derived fields absent.
func (a *Analyzer) SummaryStats() domain.SummaryStats {
	stats := domain.SummaryStats{
		RecordCount: len(a.table.Rows),
		Numeric:     map[string]domain.ColumnStats{},
	}
	if len(a.table.Rows) == 0 {
		return stats
	}

	if dateCol, ok := a.roles.DateColumn(a.table); ok {
		if span, ok := dateSpan(a.table, dateCol); ok {
			stats.DateRange = span
		}
	}

	for _, col := range a.table.Columns() {
		var (
			count int
			sum   float64
			min   float64
			max   float64
		)
		for _, row := range a.table.Rows {
			v, ok := domain.AsNumber(row[col])
			if !ok {
				continue
			}
			if count == 0 || v < min {
				min = v
			}
			if count == 0 || v > max {
				max = v
			}
			sum += v
			count++
		}
		if count == 0 {
			continue
		}
		stats.Numeric[col] = domain.ColumnStats{
			Min:  min,
			Max:  max,
			Mean: sum / float64(count),
			Sum:  sum,
		}
	}
	return stats
}

// TopPerformers groups rows by groupKey, sums valueColumn per group and
// returns the limit largest groups in descending order. Groups tied on the
// sum keep the order in which their key first appears in the table.
// A limit of zero or less yields an empty result.
func (a *Analyzer) TopPerformers(groupKey, valueColumn string, limit int) ([]domain.RankingEntry, error) {
	if !a.table.HasColumn(groupKey) {
		return nil, &InvalidColumnError{Column: groupKey}
	}
	if !a.table.HasColumn(valueColumn) {
		return nil, &InvalidColumnError{Column: valueColumn}
	}
	if limit <= 0 {
		return []domain.RankingEntry{}, nil
	}

	keys, totals := a.groupSums(groupKey, valueColumn)

	entries := make([]domain.RankingEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, domain.RankingEntry{Key: key, Aggregate: totals[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Aggregate > entries[j].Aggregate
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// TrendAnalysis groups rows by the value of periodColumn, sums valueColumn
// per period and returns the series in ascending period order. The growth
// rate of a point is (current-previous)/previous; it is nil for the first
// point and whenever the previous aggregate is exactly zero. Only observed
// periods appear in the series.
func (a *Analyzer) TrendAnalysis(periodColumn, valueColumn string) ([]domain.TrendPoint, error) {
	if !a.table.HasColumn(periodColumn) {
		return nil, &InvalidColumnError{Column: periodColumn}
	}
	if !a.table.HasColumn(valueColumn) {
		return nil, &InvalidColumnError{Column: valueColumn}
	}

	keys, totals := a.groupSums(periodColumn, valueColumn)
	sort.SliceStable(keys, func(i, j int) bool {
		return periodLess(keys[i], keys[j])
	})

	points := make([]domain.TrendPoint, 0, len(keys))
	for i, key := range keys {
		point := domain.TrendPoint{Period: key, Aggregate: totals[key]}
		if i > 0 {
			prev := totals[keys[i-1]]
			if prev != 0 {
				rate := (point.Aggregate - prev) / prev
				point.GrowthRate = &rate
			}
		}
		points = append(points, point)
	}
	return points, nil
}

// groupSums buckets rows by the cell value of keyColumn and sums the numeric
// cells of valueColumn per bucket. Keys come back in first-occurrence order.
func (a *Analyzer) groupSums(keyColumn, valueColumn string) ([]any, map[any]float64) {
	totals := make(map[any]float64)
	keys := make([]any, 0)
	for _, row := range a.table.Rows {
		key := row[keyColumn]
		if _, seen := totals[key]; !seen {
			keys = append(keys, key)
			totals[key] = 0
		}
		if v, ok := domain.AsNumber(row[valueColumn]); ok {
			totals[key] += v
		}
	}
	return keys, totals
}

func dateSpan(table domain.Table, col string) (*domain.DateRange, bool) {
	var span domain.DateRange
	found := false
	for _, row := range table.Rows {
		t, ok := domain.AsTime(row[col])
		if !ok {
			continue
		}
		if !found || t.Before(span.Start) {
			span.Start = t
		}
		if !found || t.After(span.End) {
			span.End = t
		}
		found = true
	}
	if !found {
		return nil, false
	}
	return &span, true
}

// periodLess orders period keys: times chronologically, numbers numerically,
// everything else by string representation.
func periodLess(a, b any) bool {
	if ta, ok := domain.AsTime(a); ok {
		if tb, ok := domain.AsTime(b); ok {
			return ta.Before(tb)
		}
	}
	if na, ok := domain.AsNumber(a); ok {
		if nb, ok := domain.AsNumber(b); ok {
			return na < nb
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
