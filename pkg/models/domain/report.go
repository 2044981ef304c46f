package domain

import "time"

// DateRange is the observed span of a date column.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ColumnStats holds aggregates over the non-missing numeric cells of one column.
type ColumnStats struct {
	Min  float64
	Max  float64
	Mean float64
	Sum  float64
}

// SummaryStats describes one table. DateRange is nil when the table has no
// date column; Numeric is empty when the table has no rows, since min/max/mean
// are undefined there.
type SummaryStats struct {
	RecordCount int
	DateRange   *DateRange
	Numeric     map[string]ColumnStats
}

// RankingEntry is one row of a top-N result.
type RankingEntry struct {
	Key       any
	Aggregate float64
}

// TrendPoint is one period of a trend series. GrowthRate is nil for the first
// period and whenever the prior period's aggregate is exactly zero.
type TrendPoint struct {
	Period     any
	Aggregate  float64
	GrowthRate *float64
}

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ChartDirective instructs the writer to render a chart next to a sheet's data.
type ChartDirective struct {
	Kind  ChartKind
	Title string
}

// SheetSpec is one unit of report output. Exactly one of Table, Rankings,
// Trend or Summary is populated.
type SheetSpec struct {
	Name     string
	Table    *Table
	Rankings []RankingEntry
	Trend    []TrendPoint
	Summary  *ExecutiveSummary
	Chart    *ChartDirective
}

// DatasetSummary is one dataset's contribution to the executive summary.
type DatasetSummary struct {
	Dataset string
	Stats   SummaryStats
}

// ExecutiveSummary aggregates all datasets of one report.
type ExecutiveSummary struct {
	TotalRecords int
	Datasets     []DatasetSummary
	GlobalTop    []RankingEntry
}
