package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/report-forge/pkg/models/domain"
)

// Reporter prints a sheet plan to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

type planView struct {
	Title  string
	Sheets []sheetView
}

type sheetView struct {
	Name  string
	Kind  string
	Rows  int
	Chart string
}

func (c *Reporter) Handle(title string, sheets []domain.SheetSpec) error {
	view := planView{Title: title}
	for _, spec := range sheets {
		sv := sheetView{Name: spec.Name}
		switch {
		case spec.Table != nil:
			sv.Kind = "raw"
			sv.Rows = len(spec.Table.Rows)
		case spec.Rankings != nil:
			sv.Kind = "ranking"
			sv.Rows = len(spec.Rankings)
		case spec.Trend != nil:
			sv.Kind = "trend"
			sv.Rows = len(spec.Trend)
		case spec.Summary != nil:
			sv.Kind = "summary"
			sv.Rows = len(spec.Summary.Datasets)
		}
		if spec.Chart != nil {
			sv.Chart = string(spec.Chart.Kind)
		}
		view.Sheets = append(view.Sheets, sv)
	}

	tmpl := `
{{.Title}} ({{len .Sheets}} sheets)
{{range .Sheets}}
- {{.Name}} [{{.Kind}}] {{.Rows}} rows{{if .Chart}} + {{.Chart}} chart{{end}}{{end}}
`
	t, err := template.New("plan").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
