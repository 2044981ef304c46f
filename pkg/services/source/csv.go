package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// CSVLoader reads every .csv file in a directory into one dataset each.
// Files are processed in name order so the report layout does not depend on
// directory listing order.
type CSVLoader struct {
	dir string
}

func CSVFactory(opts Options) (Loader, error) {
	if opts.InputDir == "" {
		return nil, fmt.Errorf("csv source requires an input directory")
	}
	return &CSVLoader{dir: opts.InputDir}, nil
}

func (l *CSVLoader) Load(_ context.Context) ([]domain.Dataset, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	datasets := make([]domain.Dataset, 0, len(names))
	for _, name := range names {
		table, err := readTable(filepath.Join(l.dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		datasets = append(datasets, domain.Dataset{
			Name:  strings.TrimSuffix(name, ".csv"),
			Table: table,
		})
	}
	return datasets, nil
}

func readTable(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("missing header row")
	}

	headers := records[0]
	table := domain.Table{Rows: make([]domain.Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			row[header] = parseCell(record[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// parseCell types a raw cell: dates first, then numbers, else the string
// as-is.
func parseCell(raw string) any {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}
