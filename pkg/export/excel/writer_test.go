package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSheets() []domain.SheetSpec {
	growth := 0.5
	return []domain.SheetSpec{
		{
			Name: "Executive Summary",
			Summary: &domain.ExecutiveSummary{
				TotalRecords: 2,
				Datasets: []domain.DatasetSummary{
					{Dataset: "Sales", Stats: domain.SummaryStats{RecordCount: 2}},
				},
				GlobalTop: []domain.RankingEntry{{Key: "B", Aggregate: 300}},
			},
		},
		{
			Name: "Sales",
			Table: &domain.Table{Rows: []domain.Row{
				{"seller": "A", "net_value": 100.0},
				{"seller": "B", "net_value": 300.0},
			}},
		},
		{
			Name:     "Sales Top Seller",
			Rankings: []domain.RankingEntry{{Key: "B", Aggregate: 300}, {Key: "A", Aggregate: 100}},
			Chart:    &domain.ChartDirective{Kind: domain.ChartBar, Title: "Top Seller"},
		},
		{
			Name: "Sales Trend",
			Trend: []domain.TrendPoint{
				{Period: "2024-01", Aggregate: 100},
				{Period: "2024-02", Aggregate: 150, GrowthRate: &growth},
			},
			Chart: &domain.ChartDirective{Kind: domain.ChartLine, Title: "Trend"},
		},
	}
}

func TestWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one worksheet per spec", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "report.xlsx")
		cfg := domain.ReportConfig{OutputPath: path, CompanyName: "Test Co"}

		require.NoError(t, NewWriter().Write(ctx, cfg, testSheets()))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Executive Summary", "Sales", "Sales Top Seller", "Sales Trend"}, f.GetSheetList())

		header, err := f.GetCellValue("Sales", "A1")
		require.NoError(t, err)
		assert.Equal(t, "net_value", header)

		top, err := f.GetCellValue("Sales Top Seller", "A2")
		require.NoError(t, err)
		assert.Equal(t, "B", top)

		title, err := f.GetCellValue("Executive Summary", "A1")
		require.NoError(t, err)
		assert.Equal(t, "EXECUTIVE REPORT - TEST CO", title)
	})

	t.Run("growth cell is empty when the rate is absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.xlsx")
		cfg := domain.ReportConfig{OutputPath: path}

		require.NoError(t, NewWriter().Write(ctx, cfg, testSheets()))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		first, err := f.GetCellValue("Sales Trend", "C2")
		require.NoError(t, err)
		assert.Empty(t, first)

		second, err := f.GetCellValue("Sales Trend", "C3")
		require.NoError(t, err)
		assert.NotEmpty(t, second)
	})

	t.Run("unwritable path surfaces the error", func(t *testing.T) {
		cfg := domain.ReportConfig{OutputPath: "/proc/definitely/not/writable.xlsx"}
		err := NewWriter().Write(ctx, cfg, testSheets())
		assert.Error(t, err)
	})

	t.Run("sheet names are sanitized for excel", func(t *testing.T) {
		assert.Equal(t, "a-b", sheetName("a/b"))
		assert.Len(t, sheetName("a very long dataset name that never ends"), 31)
	})
}
