package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
)

type TableConfig struct {
	Width      int
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Width:      42,
		NameWidth:  30,
		ValueWidth: 10,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(r *domain.Receipt) error {
	rec := receipt.Recommend(r.GrandTotal())

	funcMap := template.FuncMap{
		"formatRow": func(name string, minutes int) string {
			return fmt.Sprintf("%-*s %*s",
				c.config.NameWidth, name,
				c.config.ValueWidth, receipt.FormatTime(minutes))
		},
		"formatDate": receipt.FormatDate,
		"separator": func() string {
			return strings.Repeat("-", c.config.Width)
		},
		"doubleSeparator": func() string {
			return strings.Repeat("=", c.config.Width)
		},
		"center": func(s string) string {
			pad := c.config.Width - len(s)
			if pad <= 0 {
				return s
			}
			return strings.Repeat(" ", pad/2) + s
		},
		"upper": strings.ToUpper,
	}

	tmpl := `
{{doubleSeparator}}
{{center "SCREEN TIME"}}
{{center "DIGITAL RECEIPT"}}
{{doubleSeparator}}
{{center (upper (printf "%s report" .Receipt.Period))}}
{{center (printf "%s - %s" (formatDate .Receipt.StartDate) (formatDate .Receipt.EndDate))}}
{{center (printf "generated at %s" .Receipt.GeneratedAt)}}
{{separator}}
{{range .Receipt.Categories}}
{{.Name}}
{{range .Apps}}{{formatRow .Name .Minutes}}
{{end}}{{formatRow "SUBTOTAL" .Subtotal}}
{{separator}}
{{end}}
{{formatRow "GRAND TOTAL" .Receipt.GrandTotal}}
{{doubleSeparator}}
{{center .Recommendation.Headline}}
{{center .Recommendation.Message}}
{{doubleSeparator}}
`

	t, err := template.New("receipt").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		Receipt        *domain.Receipt
		Recommendation domain.Recommendation
	}{Receipt: r, Recommendation: rec}

	return t.Execute(c.writer, data)
}
