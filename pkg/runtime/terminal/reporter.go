package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
)

// Reporter outputs a condensed receipt summary, one line per category.
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

func (c *Reporter) Handle(r *domain.Receipt) error {
	rec := receipt.Recommend(r.GrandTotal())

	funcMap := template.FuncMap{
		"formatTime": receipt.FormatTime,
		"formatDate": receipt.FormatDate,
	}

	tmpl := `
Screen time {{.Receipt.Period}} report: {{formatDate .Receipt.StartDate}} to {{formatDate .Receipt.EndDate}}
Total: {{formatTime .Receipt.GrandTotal}}

{{range .Receipt.Categories}}- {{.Name}}: {{formatTime .Subtotal}} ({{len .Apps}} apps)
{{end}}
{{.Recommendation.Headline}} {{.Recommendation.Message}}
`
	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Receipt        *domain.Receipt
		Recommendation domain.Recommendation
	}{Receipt: r, Recommendation: rec}

	return t.Execute(c.writer, data)
}
