package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/analysis"
	"github.com/rs/zerolog"
)

const topPerformerLimit = 5

// Assembler turns named datasets into an ordered list of sheet specs for the
// spreadsheet writer. It is a pure function of its config and inputs: calling
// Assemble twice with the same datasets yields structurally identical output.
type Assembler struct {
	cfg   domain.ReportConfig
	roles analysis.RoleSet
}

func NewAssembler(cfg domain.ReportConfig) *Assembler {
	return &Assembler{cfg: cfg, roles: analysis.DefaultRoles()}
}

// Assemble emits, per dataset in slice order: the raw sheet, one top-performer
// sheet per recognized identity column, and a trend sheet when the dataset has
// a period column. Datasets without recognizable columns produce only their
// raw sheet; that is policy, not an error. When the config enables it, an
// executive summary aggregating every dataset is placed first in the result.
func (a *Assembler) Assemble(ctx context.Context, datasets []domain.Dataset) ([]domain.SheetSpec, error) {
	logger := zerolog.Ctx(ctx)

	sheets := make([]domain.SheetSpec, 0, len(datasets)*2)
	summary := domain.ExecutiveSummary{}
	var merged []domain.RankingEntry

	for i := range datasets {
		ds := datasets[i]
		analyzer := analysis.NewAnalyzer(ds.Table)

		sheets = append(sheets, domain.SheetSpec{Name: ds.Name, Table: &datasets[i].Table})

		valueCol, hasValue := a.roles.ValueColumn(ds.Table)
		if hasValue {
			for _, idCol := range a.roles.IdentityColumns(ds.Table) {
				entries, err := analyzer.TopPerformers(idCol, valueCol, topPerformerLimit)
				if err != nil {
					return nil, fmt.Errorf("ranking %q by %q in dataset %q: %w", idCol, valueCol, ds.Name, err)
				}
				sheets = append(sheets, domain.SheetSpec{
					Name:     fmt.Sprintf("%s Top %s", ds.Name, titleize(idCol)),
					Rankings: entries,
					Chart:    a.chart(domain.ChartBar, fmt.Sprintf("Top %s by %s", titleize(idCol), titleize(valueCol))),
				})
				merged = append(merged, entries...)
			}

			if periodCol, ok := a.roles.PeriodColumn(ds.Table); ok {
				points, err := analyzer.TrendAnalysis(periodCol, valueCol)
				if err != nil {
					return nil, fmt.Errorf("trend over %q in dataset %q: %w", periodCol, ds.Name, err)
				}
				sheets = append(sheets, domain.SheetSpec{
					Name:  fmt.Sprintf("%s Trend", ds.Name),
					Trend: points,
					Chart: a.chart(domain.ChartLine, fmt.Sprintf("%s over %s", titleize(valueCol), titleize(periodCol))),
				})
			}
		} else {
			logger.Debug().Str("dataset", ds.Name).Msg("no recognizable value column, raw sheet only")
		}

		stats := analyzer.SummaryStats()
		summary.TotalRecords += stats.RecordCount
		summary.Datasets = append(summary.Datasets, domain.DatasetSummary{Dataset: ds.Name, Stats: stats})
	}

	if !a.cfg.IncludeSummary {
		return sheets, nil
	}

	// merged was appended in dataset order with per-dataset rank order, so a
	// stable sort keeps exactly the tie-break the summary requires.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Aggregate > merged[j].Aggregate
	})
	if len(merged) > topPerformerLimit {
		merged = merged[:topPerformerLimit]
	}
	summary.GlobalTop = merged

	logger.Info().
		Int("datasets", len(datasets)).
		Int("sheets", len(sheets)+1).
		Int("records", summary.TotalRecords).
		Msg("report assembled")

	out := make([]domain.SheetSpec, 0, len(sheets)+1)
	out = append(out, domain.SheetSpec{Name: "Executive Summary", Summary: &summary})
	out = append(out, sheets...)
	return out, nil
}

func (a *Assembler) chart(kind domain.ChartKind, title string) *domain.ChartDirective {
	if !a.cfg.IncludeCharts {
		return nil
	}
	return &domain.ChartDirective{Kind: kind, Title: title}
}

func titleize(column string) string {
	parts := strings.Split(strings.ReplaceAll(column, "_", " "), " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
