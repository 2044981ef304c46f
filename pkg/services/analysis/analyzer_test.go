package analysis

import (
	"testing"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesTable() domain.Table {
	return domain.Table{Rows: []domain.Row{
		{"seller": "A", "net_value": 100.0},
		{"seller": "B", "net_value": 300.0},
		{"seller": "A", "net_value": 50.0},
	}}
}

func TestSummaryStats(t *testing.T) {
	t.Run("record count matches row count", func(t *testing.T) {
		stats := NewAnalyzer(salesTable()).SummaryStats()
		assert.Equal(t, 3, stats.RecordCount)
	})

	t.Run("numeric aggregates exclude missing cells", func(t *testing.T) {
		table := domain.Table{Rows: []domain.Row{
			{"seller": "A", "net_value": 10.0},
			{"seller": "B", "net_value": "n/a"},
			{"seller": "C", "net_value": 30.0},
		}}
		stats := NewAnalyzer(table).SummaryStats()

		require.Contains(t, stats.Numeric, "net_value")
		col := stats.Numeric["net_value"]
		assert.Equal(t, 10.0, col.Min)
		assert.Equal(t, 30.0, col.Max)
		assert.Equal(t, 20.0, col.Mean)
		assert.Equal(t, 40.0, col.Sum)
	})

	t.Run("date range over the recognized date column", func(t *testing.T) {
		early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		late := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		table := domain.Table{Rows: []domain.Row{
			{"date": late, "net_value": 1.0},
			{"date": early, "net_value": 2.0},
		}}
		stats := NewAnalyzer(table).SummaryStats()

		require.NotNil(t, stats.DateRange)
		assert.Equal(t, early, stats.DateRange.Start)
		assert.Equal(t, late, stats.DateRange.End)
	})

	t.Run("empty table reports absent fields instead of failing", func(t *testing.T) {
		stats := NewAnalyzer(domain.Table{}).SummaryStats()
		assert.Equal(t, 0, stats.RecordCount)
		assert.Nil(t, stats.DateRange)
		assert.Empty(t, stats.Numeric)
	})
}

func TestTopPerformers(t *testing.T) {
	t.Run("sums per group and sorts descending", func(t *testing.T) {
		entries, err := NewAnalyzer(salesTable()).TopPerformers("seller", "net_value", 2)
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, domain.RankingEntry{Key: "B", Aggregate: 300.0}, entries[0])
		assert.Equal(t, domain.RankingEntry{Key: "A", Aggregate: 150.0}, entries[1])
	})

	t.Run("truncates to the distinct group count", func(t *testing.T) {
		entries, err := NewAnalyzer(salesTable()).TopPerformers("seller", "net_value", 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("ties keep first occurrence order", func(t *testing.T) {
		table := domain.Table{Rows: []domain.Row{
			{"seller": "C", "net_value": 100.0},
			{"seller": "A", "net_value": 100.0},
			{"seller": "B", "net_value": 100.0},
		}}
		entries, err := NewAnalyzer(table).TopPerformers("seller", "net_value", 3)
		require.NoError(t, err)

		assert.Equal(t, "C", entries[0].Key)
		assert.Equal(t, "A", entries[1].Key)
		assert.Equal(t, "B", entries[2].Key)
	})

	t.Run("aggregates survive permutation of tied rows", func(t *testing.T) {
		permuted := domain.Table{Rows: []domain.Row{
			{"seller": "A", "net_value": 50.0},
			{"seller": "B", "net_value": 300.0},
			{"seller": "A", "net_value": 100.0},
		}}
		a, err := NewAnalyzer(salesTable()).TopPerformers("seller", "net_value", 2)
		require.NoError(t, err)
		b, err := NewAnalyzer(permuted).TopPerformers("seller", "net_value", 2)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("zero or negative limit yields empty result", func(t *testing.T) {
		analyzer := NewAnalyzer(salesTable())
		for _, limit := range []int{0, -1} {
			entries, err := analyzer.TopPerformers("seller", "net_value", limit)
			require.NoError(t, err)
			assert.Empty(t, entries)
		}
	})

	t.Run("unknown column fails", func(t *testing.T) {
		analyzer := NewAnalyzer(salesTable())

		_, err := analyzer.TopPerformers("missing", "net_value", 5)
		var colErr *InvalidColumnError
		require.ErrorAs(t, err, &colErr)
		assert.Equal(t, "missing", colErr.Column)

		_, err = analyzer.TopPerformers("seller", "missing", 5)
		require.ErrorAs(t, err, &colErr)
		assert.Equal(t, "missing", colErr.Column)
	})
}

func TestTrendAnalysis(t *testing.T) {
	t.Run("orders periods ascending with nil rate for the first", func(t *testing.T) {
		table := domain.Table{Rows: []domain.Row{
			{"month": "2024-02", "net_value": 150.0},
			{"month": "2024-01", "net_value": 100.0},
			{"month": "2024-02", "net_value": 50.0},
		}}
		points, err := NewAnalyzer(table).TrendAnalysis("month", "net_value")
		require.NoError(t, err)

		require.Len(t, points, 2)
		assert.Equal(t, "2024-01", points[0].Period)
		assert.Nil(t, points[0].GrowthRate)
		assert.Equal(t, "2024-02", points[1].Period)
		require.NotNil(t, points[1].GrowthRate)
		assert.InDelta(t, 1.0, *points[1].GrowthRate, 1e-9)
	})

	t.Run("zero baseline yields nil growth", func(t *testing.T) {
		table := domain.Table{Rows: []domain.Row{
			{"month": "2024-01", "net_value": 100.0},
			{"month": "2024-02", "net_value": 0.0},
			{"month": "2024-03", "net_value": 50.0},
		}}
		points, err := NewAnalyzer(table).TrendAnalysis("month", "net_value")
		require.NoError(t, err)

		require.Len(t, points, 3)
		assert.Nil(t, points[0].GrowthRate)
		require.NotNil(t, points[1].GrowthRate)
		assert.InDelta(t, -1.0, *points[1].GrowthRate, 1e-9)
		assert.Nil(t, points[2].GrowthRate)
	})

	t.Run("time periods sort chronologically", func(t *testing.T) {
		jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		table := domain.Table{Rows: []domain.Row{
			{"date": feb, "net_value": 10.0},
			{"date": jan, "net_value": 20.0},
		}}
		points, err := NewAnalyzer(table).TrendAnalysis("date", "net_value")
		require.NoError(t, err)

		require.Len(t, points, 2)
		assert.Equal(t, jan, points[0].Period)
		assert.Equal(t, feb, points[1].Period)
	})

	t.Run("only observed periods appear", func(t *testing.T) {
		table := domain.Table{Rows: []domain.Row{
			{"month": "2024-01", "net_value": 10.0},
			{"month": "2024-04", "net_value": 20.0},
		}}
		points, err := NewAnalyzer(table).TrendAnalysis("month", "net_value")
		require.NoError(t, err)
		assert.Len(t, points, 2)
	})

	t.Run("unknown column fails", func(t *testing.T) {
		_, err := NewAnalyzer(salesTable()).TrendAnalysis("month", "net_value")
		var colErr *InvalidColumnError
		require.ErrorAs(t, err, &colErr)
	})
}
