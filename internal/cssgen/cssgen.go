// Package cssgen renders design variables as a :root block of CSS custom properties.
package cssgen

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/designvars/internal/design"
)

const (
	header = ":root { \n"
	footer = "}"
	indent = "    "
)

// Generate rebuilds the full CSS text: colors first, then fonts, each in insertion order.
func Generate(vars design.Variables) string {
	var b strings.Builder
	b.WriteString(header)
	writeGroup(&b, vars.Colors)
	writeGroup(&b, vars.Fonts)
	b.WriteString(footer)
	return b.String()
}

// Write renders vars to w.
func Write(w io.Writer, vars design.Variables) error {
	_, err := io.WriteString(w, Generate(vars))
	return err
}

// Declaration formats one custom property line without the trailing newline.
func Declaration(name, value string) string {
	return indent + "--" + name + ": " + value + ";"
}

func writeGroup(b *strings.Builder, g design.Group) {
	for _, entry := range g.Entries() {
		b.WriteString(Declaration(entry.Name, entry.Value))
		b.WriteByte('\n')
	}
}
