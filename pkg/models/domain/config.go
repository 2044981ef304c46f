package domain

// ReportConfig is supplied once at assembler construction and never mutated
// during a run.
type ReportConfig struct {
	Title          string
	OutputPath     string
	IncludeCharts  bool
	IncludeSummary bool
	CompanyName    string
}
