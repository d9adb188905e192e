package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd(opts *cliOptions) *cobra.Command {
	var exitCode bool
	cmd := &cobra.Command{
		Use:   "diff FILE",
		Short: "Compare the catalog with a seed or export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := opts.app.Diff(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := printDiff(cmd.OutOrStdout(), diff, opts.jsonOutput); err != nil {
				return err
			}
			if exitCode && !diff.IsEmpty() {
				return exitSilent(exitFailure)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when there are differences")
	return cmd
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var format string
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a date-stamped file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.app.Export(format, dir)
			if err != nil {
				return err
			}
			return printPath(cmd.OutOrStdout(), "exported", path, opts.jsonOutput)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "json, yaml or toml (default from config)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from config)")
	return cmd
}

func newSchemaCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a catalog snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := opts.app.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a seed or export file without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := opts.app.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"valid": true, "summary": summary})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid tools=%d useCases=%d\n", summary.TotalTools, summary.TotalUseCases)
			return err
		},
	}
}

func newMetricsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Dump this session's metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.app.WriteMetrics(cmd.OutOrStdout())
		},
	}
}
