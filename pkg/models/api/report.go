package api

// GenerateRequest configures one report generation run.
type GenerateRequest struct {
	Title          string `json:"title,omitempty"`
	OutputPath     string `json:"output_path,omitempty"`
	IncludeCharts  *bool  `json:"include_charts,omitempty"`
	IncludeSummary *bool  `json:"include_summary,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Source         string `json:"source,omitempty"`
	InputDir       string `json:"input_dir,omitempty"`
	Days           int    `json:"days,omitempty"`
	Months         int    `json:"months,omitempty"`
}

// SheetInfo describes one planned or written worksheet.
type SheetInfo struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Chart string `json:"chart,omitempty"`
}

// GenerateResponse reports the outcome of a generation run.
type GenerateResponse struct {
	OutputPath   string      `json:"output_path"`
	Sheets       []SheetInfo `json:"sheets"`
	TotalRecords int         `json:"total_records"`
}

// PlanResponse previews the sheet plan without writing a workbook.
type PlanResponse struct {
	Sheets []SheetInfo `json:"sheets"`
}
