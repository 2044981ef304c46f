package report

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
	reportsvc "github.com/de-tools/report-forge/pkg/services/report"
	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/rs/zerolog"
)

// Writer persists assembled sheets to a workbook.
type Writer interface {
	Write(ctx context.Context, cfg domain.ReportConfig, sheets []domain.SheetSpec) error
}

type Handler struct {
	defaults domain.ReportConfig
	sources  source.Registry
	writer   Writer
}

func NewHandler(defaults domain.ReportConfig, sources source.Registry, writer Writer) *Handler {
	return &Handler{defaults: defaults, sources: sources, writer: writer}
}

// GenerateReport assembles the requested datasets and writes the workbook.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := h.configFor(req)
	sheets, err := h.assemble(ctx, req, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to assemble report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.writer.Write(ctx, cfg, sheets); err != nil {
		logger.Error().Err(err).Str("path", cfg.OutputPath).Msg("failed to write workbook")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := api.GenerateResponse{
		OutputPath: cfg.OutputPath,
		Sheets:     sheetInfos(sheets),
	}
	for _, spec := range sheets {
		if spec.Summary != nil {
			resp.TotalRecords = spec.Summary.TotalRecords
		}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode generate response")
	}
}

// PlanReport previews the sheet plan without writing a workbook.
func (h *Handler) PlanReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req := api.GenerateRequest{
		Source:   r.URL.Query().Get("source"),
		InputDir: r.URL.Query().Get("input_dir"),
	}
	cfg := h.configFor(req)

	sheets, err := h.assemble(ctx, req, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to plan report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(api.PlanResponse{Sheets: sheetInfos(sheets)}); err != nil {
		logger.Error().Err(err).Msg("failed to encode plan response")
	}
}

func (h *Handler) assemble(ctx context.Context, req api.GenerateRequest, cfg domain.ReportConfig) ([]domain.SheetSpec, error) {
	name := req.Source
	if name == "" {
		name = "sample"
	}
	loader, err := h.sources.Create(name, source.Options{
		InputDir: req.InputDir,
		Days:     req.Days,
		Months:   req.Months,
	})
	if err != nil {
		return nil, err
	}

	datasets, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return reportsvc.NewAssembler(cfg).Assemble(ctx, datasets)
}

func (h *Handler) configFor(req api.GenerateRequest) domain.ReportConfig {
	cfg := h.defaults
	if req.Title != "" {
		cfg.Title = req.Title
	}
	if req.OutputPath != "" {
		cfg.OutputPath = req.OutputPath
	}
	if req.CompanyName != "" {
		cfg.CompanyName = req.CompanyName
	}
	if req.IncludeCharts != nil {
		cfg.IncludeCharts = *req.IncludeCharts
	}
	if req.IncludeSummary != nil {
		cfg.IncludeSummary = *req.IncludeSummary
	}
	return cfg
}

func sheetInfos(sheets []domain.SheetSpec) []api.SheetInfo {
	infos := make([]api.SheetInfo, 0, len(sheets))
	for _, spec := range sheets {
		info := api.SheetInfo{Name: spec.Name}
		switch {
		case spec.Table != nil:
			info.Rows = len(spec.Table.Rows)
		case spec.Rankings != nil:
			info.Rows = len(spec.Rankings)
		case spec.Trend != nil:
			info.Rows = len(spec.Trend)
		case spec.Summary != nil:
			info.Rows = len(spec.Summary.Datasets)
		}
		if spec.Chart != nil {
			info.Chart = string(spec.Chart.Kind)
		}
		infos = append(infos, info)
	}
	return infos
}
