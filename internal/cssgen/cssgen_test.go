package cssgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designvars/internal/design"
)

func TestGenerateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":root { \n}", Generate(design.Variables{}))
}

func TestGenerateColorsThenFonts(t *testing.T) {
	t.Parallel()

	var vars design.Variables
	vars.Fonts.Set("heading", "2rem")
	vars.Colors.Set("brand", "#ff0000")
	vars.Colors.Set("accent", "hsl(200, 50%, 60%)")

	want := ":root { \n" +
		"    --brand: #ff0000;\n" +
		"    --accent: hsl(200, 50%, 60%);\n" +
		"    --heading: 2rem;\n" +
		"}"
	assert.Equal(t, want, Generate(vars))
}

func TestGenerateContainsDeclarationLine(t *testing.T) {
	t.Parallel()

	var vars design.Variables
	vars.Colors.Set("brand", "#ff0000")

	assert.Contains(t, Generate(vars), "    --brand: #ff0000;\n")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var vars design.Variables
	vars.Fonts.Set("body", "16px")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, vars))
	assert.Equal(t, Generate(vars), buf.String())
}
