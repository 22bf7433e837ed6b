package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	dataDir    string
	storage    string
	layout     string
	verbose    bool
	logFile    string
	listen     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "designvars",
		Short:         "designvars collects color and font tokens and renders them as CSS custom properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Settings file (default ~/.designvars/config.yaml)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "Directory holding persisted variables")
	pf.StringVar(&flags.storage, "storage", "", "Storage backend: file, sqlite or memory")
	pf.StringVar(&flags.layout, "layout", "", "Record layout: component or script")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file instead of stderr")

	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newCopyCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
