package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// colorRow is a color entry with the hex used for its swatch.
type colorRow struct {
	Name  string
	Value string
	Hex   string
}

type pageData struct {
	Layout        string
	SupportsFonts bool
	Fields        design.Submission
	Units         []string
	Notice        *form.Notice
	Colors        []colorRow
	Fonts         []design.Entry
	CSS           string
	CopyEnabled   bool
}

func parseTemplates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

func newPageData(ctrl *form.Controller, notice *form.Notice) pageData {
	vars := ctrl.Variables()

	colors := make([]colorRow, 0, vars.Colors.Len())
	for _, e := range vars.Colors.Entries() {
		row := colorRow{Name: e.Name, Value: e.Value}
		if c, ok := validation.ParseColor(e.Value); ok {
			row.Hex = c.Hex()
		}
		colors = append(colors, row)
	}

	return pageData{
		Layout:        ctrl.Layout().String(),
		SupportsFonts: ctrl.Layout().SupportsFonts(),
		Fields:        ctrl.Fields(),
		Units:         validation.FontUnits(),
		Notice:        notice,
		Colors:        colors,
		Fonts:         vars.Fonts.Entries(),
		CSS:           ctrl.CSS(),
		CopyEnabled:   ctrl.CopyEnabled(),
	}
}

func render(w io.Writer, t *template.Template, data pageData) error {
	return t.ExecuteTemplate(w, "page.html", data)
}
