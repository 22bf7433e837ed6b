package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/cssgen"
	"github.com/alexisbeaulieu97/designvars/internal/form"
)

type addOptions struct {
	colorName string
	color     string
	fontName  string
	fontSize  string
	unit      string
}

func newAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a color and/or a font variable",
		Example: `  designvars add --color-name primary --color "#3366ff"
  designvars add --font-name heading --font-size 2 --unit rem
  designvars add --color-name accent --color "hsl(12, 80%, 55%)" --font-name body --font-size 16 --unit px`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.colorName, "color-name", "", "Color variable name")
	cmd.Flags().StringVar(&opts.color, "color", "", "Color value, hex (#RRGGBB) or hsl(H, S%, L%)")
	cmd.Flags().StringVar(&opts.fontName, "font-name", "", "Font variable name")
	cmd.Flags().StringVar(&opts.fontSize, "font-size", "", "Font size magnitude")
	cmd.Flags().StringVar(&opts.unit, "unit", "", "Font size unit: rem, em or px (default from settings)")

	return cmd
}

func runAdd(cmd *cobra.Command, rootFlags *rootFlags, opts *addOptions) error {
	app, err := openApp(cmd, rootFlags, "add variables", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	store, err := app.openStore(ctx, "add variables")
	if err != nil {
		return err
	}

	ctrl := app.controller(store, form.WithNotifier(printNotices(cmd.OutOrStdout())))
	ctrl.SetField(form.FieldColorName, opts.colorName)
	ctrl.SetField(form.FieldColorValue, opts.color)
	ctrl.SetField(form.FieldFontName, opts.fontName)
	ctrl.SetField(form.FieldFontSize, opts.fontSize)
	if opts.unit != "" {
		ctrl.SetField(form.FieldFontUnit, opts.unit)
	}

	submitted := ctrl.Fields().Normalized()
	res, err := ctrl.Submit(ctx)
	if err != nil {
		return newCommandError("add variables", "validating the submission", err, submitSuggestion(err))
	}

	out := cmd.OutOrStdout()
	vars := ctrl.Variables()
	if res.Color {
		value, _ := vars.Colors.Get(submitted.ColorName)
		_, _ = fmt.Fprintf(out, "✓ Added color %s\n", strings.TrimSpace(cssgen.Declaration(submitted.ColorName, value)))
	}
	if res.Font {
		value, _ := vars.Fonts.Get(submitted.FontName)
		_, _ = fmt.Fprintf(out, "✓ Added font %s\n", strings.TrimSpace(cssgen.Declaration(submitted.FontName, value)))
	}
	return nil
}
