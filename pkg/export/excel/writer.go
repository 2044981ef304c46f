package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor = "366092"
	maxColumnWidth  = 50
	maxSheetName    = 31
	chartAnchor     = "E2"
)

// Writer renders sheet specs into an xlsx workbook: one worksheet per spec,
// styled headers and borders, auto column widths, charts where directed, and
// a formatted executive summary. Failures (unwritable path, locked file)
// surface to the caller; nothing is retried.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

type styleSet struct {
	header  int
	body    int
	percent int
	title   int
	section int
}

func (w *Writer) Write(ctx context.Context, cfg domain.ReportConfig, sheets []domain.SheetSpec) error {
	logger := zerolog.Ctx(ctx)

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	for _, spec := range sheets {
		name := sheetName(spec.Name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", spec.Name, err)
		}

		if spec.Summary != nil {
			err = writeSummary(f, name, cfg, spec.Summary, styles)
		} else {
			err = writeGrid(f, name, spec, styles)
		}
		if err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", spec.Name, err)
		}

		if spec.Chart != nil {
			if err := addChart(f, name, spec); err != nil {
				return fmt.Errorf("failed to add chart to sheet %q: %w", spec.Name, err)
			}
		}
		logger.Debug().Str("sheet", name).Msg("sheet written")
	}

	// Drop the workbook's default sheet unless a spec claimed the name.
	claimed := false
	for _, spec := range sheets {
		if sheetName(spec.Name) == "Sheet1" {
			claimed = true
			break
		}
	}
	if len(sheets) > 0 && !claimed {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := f.SaveAs(cfg.OutputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info().Str("path", cfg.OutputPath).Int("sheets", len(sheets)).Msg("workbook saved")
	return nil
}

// grid converts a spec's content into a header row plus body rows.
func grid(spec domain.SheetSpec) ([]string, [][]any) {
	switch {
	case spec.Table != nil:
		headers := spec.Table.Columns()
		rows := make([][]any, 0, len(spec.Table.Rows))
		for _, row := range spec.Table.Rows {
			cells := make([]any, len(headers))
			for i, col := range headers {
				cells[i] = row[col]
			}
			rows = append(rows, cells)
		}
		return headers, rows
	case spec.Rankings != nil:
		rows := make([][]any, 0, len(spec.Rankings))
		for _, entry := range spec.Rankings {
			rows = append(rows, []any{entry.Key, entry.Aggregate})
		}
		return []string{"Name", "Total"}, rows
	case spec.Trend != nil:
		rows := make([][]any, 0, len(spec.Trend))
		for _, point := range spec.Trend {
			cells := []any{point.Period, point.Aggregate, nil}
			if point.GrowthRate != nil {
				cells[2] = *point.GrowthRate
			}
			rows = append(rows, cells)
		}
		return []string{"Period", "Total", "Growth"}, rows
	default:
		return nil, nil
	}
}

func writeGrid(f *excelize.File, sheet string, spec domain.SheetSpec, styles styleSet) error {
	headers, rows := grid(spec)
	if len(headers) == 0 {
		return nil
	}

	headerCells := make([]any, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return err
	}
	if len(rows) > 0 {
		bottom, err := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", bottom, styles.body); err != nil {
			return err
		}
		// Growth rates render as percentages.
		if spec.Trend != nil {
			if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", len(rows)+1), styles.percent); err != nil {
				return err
			}
		}
	}

	return autoWidth(f, sheet, headers, rows)
}

func autoWidth(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, header := range headers {
		width := len(header)
		for _, row := range rows {
			if i >= len(row) || row[i] == nil {
				continue
			}
			if l := len(cellText(row[i])); l > width {
				width = l
			}
		}
		if width+2 < maxColumnWidth {
			width += 2
		} else {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

func cellText(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case float64:
		return fmt.Sprintf("%.2f", t)
	default:
		return fmt.Sprint(v)
	}
}

func addChart(f *excelize.File, sheet string, spec domain.SheetSpec) error {
	_, rows := grid(spec)
	if len(rows) == 0 {
		return nil
	}

	chartType := excelize.Col
	if spec.Chart.Kind == domain.ChartLine {
		chartType = excelize.Line
	}

	return f.AddChart(sheet, chartAnchor, &excelize.Chart{
		Type:  chartType,
		Title: []excelize.RichTextRun{{Text: spec.Chart.Title}},
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", sheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, len(rows)+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, len(rows)+1),
		}},
	})
}

func writeSummary(f *excelize.File, sheet string, cfg domain.ReportConfig, summary *domain.ExecutiveSummary, styles styleSet) error {
	set := func(row int, values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := set(1, fmt.Sprintf("EXECUTIVE REPORT - %s", strings.ToUpper(cfg.CompanyName))); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return err
	}
	if err := set(3, fmt.Sprintf("Generated at: %s", time.Now().Format("02/01/2006 15:04"))); err != nil {
		return err
	}

	row := 5
	if err := set(row, "GENERAL STATISTICS"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.section); err != nil {
		return err
	}
	row++
	if err := set(row, "Total Records", summary.TotalRecords); err != nil {
		return err
	}

	for _, ds := range summary.Datasets {
		row++
		values := []any{ds.Dataset, ds.Stats.RecordCount}
		if ds.Stats.DateRange != nil {
			values = append(values, fmt.Sprintf("%s to %s",
				ds.Stats.DateRange.Start.Format("02/01/2006"),
				ds.Stats.DateRange.End.Format("02/01/2006")))
		}
		if err := set(row, values...); err != nil {
			return err
		}
	}

	if len(summary.GlobalTop) > 0 {
		row += 2
		if err := set(row, "TOP PERFORMERS"); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.section); err != nil {
			return err
		}
		row++
		if err := set(row, "Name", "Total"); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.header); err != nil {
			return err
		}
		for _, entry := range summary.GlobalTop {
			row++
			if err := set(row, entry.Key, entry.Aggregate); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.body); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(sheet, "A", "C", 28)
}

func newStyles(f *excelize.File) (styleSet, error) {
	borders := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borders,
	})
	if err != nil {
		return styleSet{}, err
	}
	body, err := f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return styleSet{}, err
	}
	percent, err := f.NewStyle(&excelize.Style{Border: borders, NumFmt: 10})
	if err != nil {
		return styleSet{}, err
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return styleSet{}, err
	}
	section, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styleSet{}, err
	}

	return styleSet{header: header, body: body, percent: percent, title: title, section: section}, nil
}

// sheetName fits a spec name into Excel's sheet naming rules: 31 characters
// max, no []:*?/\ characters.
func sheetName(name string) string {
	replacer := strings.NewReplacer("[", "(", "]", ")", ":", "-", "*", "", "?", "", "/", "-", "\\", "-")
	clean := replacer.Replace(name)
	if len(clean) > maxSheetName {
		clean = clean[:maxSheetName]
	}
	return clean
}
