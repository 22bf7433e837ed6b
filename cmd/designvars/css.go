package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/cssgen"
	"github.com/alexisbeaulieu97/designvars/pkg/diff"
)

type cssOptions struct {
	output string
	check  bool
}

func newCSSCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the :root block for the saved variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the CSS to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Compare --output with the generated CSS instead of writing it")

	return cmd
}

func runCSS(cmd *cobra.Command, rootFlags *rootFlags, opts *cssOptions) error {
	app, err := openApp(cmd, rootFlags, "generate css", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	store, err := app.openStore(cmd.Context(), "generate css")
	if err != nil {
		return err
	}

	text := cssgen.Generate(store.Snapshot())
	if opts.check && opts.output == "" {
		return newCommandError("check css", "resolving the file to compare", errors.New("--check needs --output"), "Pass the CSS file with --output.")
	}
	if opts.output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}

	if opts.check {
		return checkCSS(cmd, opts.output, text+"\n")
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newCommandError("generate css", fmt.Sprintf("creating directory %s", dir), err, "Choose an output path you can write to.")
		}
	}
	if err := os.WriteFile(opts.output, []byte(text+"\n"), 0o644); err != nil {
		return newCommandError("generate css", fmt.Sprintf("writing %s", opts.output), err, "Choose an output path you can write to.")
	}

	app.log.WithFields(map[string]any{"path": opts.output}).Info("css written")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", opts.output)
	return nil
}

var errCSSOutOfDate = errors.New("css file is out of date")

func checkCSS(cmd *cobra.Command, path, generated string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return newCommandError("check css", fmt.Sprintf("reading %s", path), err, "Check the --output path.")
	}

	changes := diff.Lines(string(existing), generated, path, "generated")
	if changes == "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", path)
		return nil
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), changes)
	count := diff.Changed(string(existing), generated)
	return newCommandError("check css", fmt.Sprintf("comparing %s (%d changed lines)", path, count), errCSSOutOfDate, fmt.Sprintf("Run 'designvars css --output %s' to regenerate it.", path))
}
