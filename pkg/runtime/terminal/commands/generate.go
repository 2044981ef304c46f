package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/report-forge/pkg/export/excel"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/services/config"
	"github.com/de-tools/report-forge/pkg/services/report"
	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	profilePath string
	sourceName  string
	inputDir    string
	outputPath  string
	days        int
	months      int
	sources     source.Registry
	writer      *excel.Writer
}

func NewGenerateCmd(sources source.Registry, writer *excel.Writer) *cobra.Command {
	gc := &GenerateCmd{sources: sources, writer: writer}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a spreadsheet report",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.profilePath, "profile", "", "Path to the report profile file")
	cmd.Flags().StringVar(&gc.sourceName, "source", "sample", "Dataset source (e.g., sample, csv)")
	cmd.Flags().StringVar(&gc.inputDir, "input", "", "Input directory for the csv source")
	cmd.Flags().StringVar(&gc.outputPath, "out", "", "Output workbook path (overrides the profile)")
	cmd.Flags().IntVar(&gc.days, "days", 90, "Days of sample sales data")
	cmd.Flags().IntVar(&gc.months, "months", 12, "Months of sample financial data")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := loadConfig(gc.profilePath, gc.outputPath)
	if err != nil {
		return err
	}

	sheets, err := assembleFromSource(ctx, gc.sources, *cfg, gc.sourceName, source.Options{
		InputDir: gc.inputDir,
		Days:     gc.days,
		Months:   gc.months,
	})
	if err != nil {
		return err
	}

	if err := gc.writer.Write(ctx, *cfg, sheets); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d sheets)\n", cfg.OutputPath, len(sheets))
	return nil
}

func loadConfig(profilePath, outputPath string) (*domain.ReportConfig, error) {
	cfg := config.Default()
	if profilePath != "" {
		loaded, err := config.LoadProfile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", profilePath, err)
		}
		cfg = *loaded
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}
	return &cfg, nil
}

func assembleFromSource(
	ctx context.Context,
	sources source.Registry,
	cfg domain.ReportConfig,
	name string,
	opts source.Options,
) ([]domain.SheetSpec, error) {
	loader, err := sources.Create(name, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create source %q: %w", name, err)
	}

	datasets, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}

	return report.NewAssembler(cfg).Assemble(ctx, datasets)
}
