package config

import (
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/spf13/viper"
)

type profile struct {
	Title          string `mapstructure:"title"`
	OutputPath     string `mapstructure:"output_path"`
	IncludeCharts  bool   `mapstructure:"include_charts"`
	IncludeSummary bool   `mapstructure:"include_summary"`
	CompanyName    string `mapstructure:"company_name"`
}

// LoadProfile reads a report profile file into a ReportConfig.
func LoadProfile(path string) (*domain.ReportConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("title", "Business Report")
	v.SetDefault("output_path", "report.xlsx")
	v.SetDefault("include_charts", true)
	v.SetDefault("include_summary", true)
	v.SetDefault("company_name", "Demo Company")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var p profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("failed to parse report profile: %w", err)
	}

	return &domain.ReportConfig{
		Title:          p.Title,
		OutputPath:     p.OutputPath,
		IncludeCharts:  p.IncludeCharts,
		IncludeSummary: p.IncludeSummary,
		CompanyName:    p.CompanyName,
	}, nil
}

// Default returns the configuration used when no profile file is supplied.
func Default() domain.ReportConfig {
	return domain.ReportConfig{
		Title:          "Business Report",
		OutputPath:     "report.xlsx",
		IncludeCharts:  true,
		IncludeSummary: true,
		CompanyName:    "Demo Company",
	}
}
