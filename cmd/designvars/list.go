package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/design"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved color and font variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := openApp(cmd, rootFlags, "list variables", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	store, err := app.openStore(cmd.Context(), "list variables")
	if err != nil {
		return err
	}

	vars := store.Snapshot()
	if opts.jsonOutput {
		return renderListJSON(cmd, vars)
	}
	if vars.IsEmpty() {
		return renderEmptyList(cmd)
	}
	return renderListTable(cmd, vars)
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No variables saved yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'designvars add --color-name primary --color \"#3366ff\"' to add your first one.")
	return nil
}

func renderListTable(cmd *cobra.Command, vars design.Variables) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "GROUP\tNAME\tVALUE")
	for _, e := range vars.Colors.Entries() {
		fmt.Fprintf(writer, "color\t%s\t%s\n", e.Name, e.Value)
	}
	for _, e := range vars.Fonts.Entries() {
		fmt.Fprintf(writer, "font\t%s\t%s\n", e.Name, e.Value)
	}

	return writer.Flush()
}

func renderListJSON(cmd *cobra.Command, vars design.Variables) error {
	data, err := json.MarshalIndent(vars, "", "  ")
	if err != nil {
		return newCommandError("list variables", "encoding JSON output", err, "Report this issue with the output of 'designvars list'.")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
