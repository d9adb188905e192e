package main

import (
	"github.com/spf13/cobra"
)

func newUseCasesCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "usecases",
		Aliases: []string{"use-cases"},
		Short:   "List and edit use cases",
	}
	cmd.AddCommand(
		newUseCasesListCmd(opts),
		newUseCasesShowCmd(opts),
		newUseCasesSetCmd(opts),
		newUseCasesAddCmd(opts),
	)
	return cmd
}

func newUseCasesListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List use cases with their ranked tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := opts.app.Snapshot()
			return printUseCases(cmd.OutOrStdout(), snapshot.UseCases, opts.app.UseCaseNames(), opts.jsonOutput)
		},
	}
}

func newUseCasesShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the ranked tools of a use case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := opts.app.UseCase(args[0])
			if err != nil {
				return err
			}
			return printUseCases(cmd.OutOrStdout(), map[string][]string{args[0]: tools}, []string{args[0]}, opts.jsonOutput)
		},
	}
}

func newUseCasesSetCmd(opts *cliOptions) *cobra.Command {
	var export bool
	cmd := &cobra.Command{
		Use:   "set NAME TOOL...",
		Short: "Insert or replace a use case",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.SetUseCase(args[0], args[1:]); err != nil {
				return err
			}
			if err := printUseCases(cmd.OutOrStdout(), map[string][]string{args[0]: args[1:]}, args[:1], opts.jsonOutput); err != nil {
				return err
			}
			return exportAfterEdit(cmd, opts, export)
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "export the catalog after the change")
	return cmd
}

func newUseCasesAddCmd(opts *cliOptions) *cobra.Command {
	var export bool
	cmd := &cobra.Command{
		Use:   "add NAME TOOL...",
		Short: "Add a new use case; fails if the name exists",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.AddUseCase(args[0], args[1:]); err != nil {
				return err
			}
			if err := printUseCases(cmd.OutOrStdout(), map[string][]string{args[0]: args[1:]}, args[:1], opts.jsonOutput); err != nil {
				return err
			}
			return exportAfterEdit(cmd, opts, export)
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "export the catalog after the change")
	return cmd
}
