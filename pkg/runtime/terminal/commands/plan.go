package commands

import (
	"os"

	"github.com/de-tools/report-forge/pkg/runtime/terminal/export"
	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type PlanCmd struct {
	profilePath string
	sourceName  string
	inputDir    string
	days        int
	months      int
	sources     source.Registry
	reporter    *export.Reporter
}

func NewPlanCmd(sources source.Registry, reporter *export.Reporter) *cobra.Command {
	pc := &PlanCmd{sources: sources, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the sheet plan without writing a workbook",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilePath, "profile", "", "Path to the report profile file")
	cmd.Flags().StringVar(&pc.sourceName, "source", "sample", "Dataset source (e.g., sample, csv)")
	cmd.Flags().StringVar(&pc.inputDir, "input", "", "Input directory for the csv source")
	cmd.Flags().IntVar(&pc.days, "days", 90, "Days of sample sales data")
	cmd.Flags().IntVar(&pc.months, "months", 12, "Months of sample financial data")

	return cmd
}

func (pc *PlanCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := loadConfig(pc.profilePath, "")
	if err != nil {
		return err
	}

	sheets, err := assembleFromSource(ctx, pc.sources, *cfg, pc.sourceName, source.Options{
		InputDir: pc.inputDir,
		Days:     pc.days,
		Months:   pc.months,
	})
	if err != nil {
		return err
	}

	return pc.reporter.Handle(cfg.Title, sheets)
}
