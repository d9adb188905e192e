package main

import (
	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [KEY]",
		Short: "Recommend a tool for a task or priority; lists keys without an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return printNames(cmd.OutOrStdout(), "priorities", opts.app.PriorityKeys(), opts.jsonOutput)
			}
			rec, err := opts.app.Recommend(args[0])
			if err != nil {
				return err
			}
			return printRecommendation(cmd.OutOrStdout(), rec, opts.jsonOutput)
		},
	}
}

func newLeadersCmd(opts *cliOptions) *cobra.Command {
	var categories []string
	var tools []string
	cmd := &cobra.Command{
		Use:   "leaders",
		Short: "Show the leader of each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			leaders, err := opts.app.Leaders(categories, tools)
			if err != nil {
				return err
			}
			return printLeaders(cmd.OutOrStdout(), leaders, opts.jsonOutput)
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "categories to rank (default from config)")
	cmd.Flags().StringSliceVar(&tools, "tool", nil, "tools to consider, in tie-break order (default all)")
	return cmd
}

func newCompareCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare TOOL_A TOOL_B",
		Short: "Show two tools side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := opts.app.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			return printSideBySide(cmd.OutOrStdout(), pair, opts.jsonOutput)
		},
	}
}

func newTableCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table [TOOL...]",
		Short: "Show the detailed comparison table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := opts.app.Table(args)
			if err != nil {
				return err
			}
			return printComparisonTable(cmd.OutOrStdout(), rows, opts.jsonOutput)
		},
	}
}

func newMatrixCmd(opts *cliOptions) *cobra.Command {
	var categories []string
	cmd := &cobra.Command{
		Use:   "matrix [TOOL...]",
		Short: "Show the score heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := opts.app.Matrix(args, categories)
			if err != nil {
				return err
			}
			return printMatrix(cmd.OutOrStdout(), matrix, opts.jsonOutput)
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "categories to include (default all)")
	return cmd
}

func newTeamMetricsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "team-metrics [TOOL...]",
		Short: "Show team performance ratings; unrated tools score 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := opts.app.TeamMetrics(args)
			if err != nil {
				return err
			}
			return printMatrix(cmd.OutOrStdout(), matrix, opts.jsonOutput)
		},
	}
}

func newSummaryCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSummary(cmd.OutOrStdout(), opts.app.Summary(), opts.app.ETag(), opts.jsonOutput)
		},
	}
}
