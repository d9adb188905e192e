package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aicompare/internal/domain"
	"aicompare/internal/infra/catalog"
)

func newToolsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List, show and edit tools",
	}
	cmd.AddCommand(
		newToolsListCmd(opts),
		newToolsShowCmd(opts),
		newToolsEditCmd(opts),
	)
	return cmd
}

func newToolsListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tool names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printNames(cmd.OutOrStdout(), "tools", opts.app.ToolNames(), opts.jsonOutput)
		},
	}
}

func newToolsShowCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a tool record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := opts.app.Tool(args[0])
			if err != nil {
				return err
			}
			return printTool(cmd.OutOrStdout(), args[0], tool, opts.jsonOutput)
		},
	}
}

type toolEditArgs struct {
	bestFor    string
	strengths  string
	weaknesses string
	nuances    string
	free       bool
	paid       float64
	scores     []string
	export     bool
}

func newToolsEditCmd(opts *cliOptions) *cobra.Command {
	args := &toolEditArgs{}
	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Edit a tool; list fields take one entry per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			edit, err := buildToolEdit(cmd, args)
			if err != nil {
				return err
			}
			name := positional[0]
			tool, err := opts.app.EditTool(name, edit)
			if err != nil {
				return err
			}
			if err := printTool(cmd.OutOrStdout(), name, tool, opts.jsonOutput); err != nil {
				return err
			}
			return exportAfterEdit(cmd, opts, args.export)
		},
	}
	cmd.Flags().StringVar(&args.bestFor, "best-for", "", "who the tool is best for")
	cmd.Flags().StringVar(&args.strengths, "strengths", "", "strengths, one per line")
	cmd.Flags().StringVar(&args.weaknesses, "weaknesses", "", "weaknesses, one per line")
	cmd.Flags().StringVar(&args.nuances, "nuances", "", "unique nuances, one per line")
	cmd.Flags().BoolVar(&args.free, "free", false, "whether a free tier exists")
	cmd.Flags().Float64Var(&args.paid, "paid", 0, "monthly pro price in USD")
	cmd.Flags().StringArrayVar(&args.scores, "score", nil, "category score as Category=N (repeatable)")
	cmd.Flags().BoolVar(&args.export, "export", false, "export the catalog after the edit")
	return cmd
}

// buildToolEdit turns the flags that were actually set into an edit.
func buildToolEdit(cmd *cobra.Command, args *toolEditArgs) (catalog.ToolEdit, error) {
	flags := cmd.Flags()
	var edit catalog.ToolEdit
	if flags.Changed("best-for") {
		edit.BestFor = &args.bestFor
	}
	if flags.Changed("strengths") {
		edit.Strengths = &args.strengths
	}
	if flags.Changed("weaknesses") {
		edit.Weaknesses = &args.weaknesses
	}
	if flags.Changed("nuances") {
		edit.Nuances = &args.nuances
	}
	if flags.Changed("free") {
		edit.Free = &args.free
	}
	if flags.Changed("paid") {
		edit.Paid = &args.paid
	}
	scores, err := parseScores(args.scores)
	if err != nil {
		return catalog.ToolEdit{}, err
	}
	edit.Scores = scores
	return edit, nil
}

func parseScores(values []string) (map[string]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	scores := make(map[string]int, len(values))
	for _, value := range values {
		category, raw, ok := strings.Cut(value, "=")
		category = strings.TrimSpace(category)
		if !ok || category == "" {
			return nil, domain.E(domain.CodeInvalidArgument, "parse score", fmt.Sprintf("expected Category=N, got %q", value), nil)
		}
		score, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, domain.E(domain.CodeInvalidArgument, "parse score", fmt.Sprintf("score for %q is not an integer", category), err)
		}
		scores[category] = score
	}
	return scores, nil
}

func exportAfterEdit(cmd *cobra.Command, opts *cliOptions, enabled bool) error {
	if !enabled {
		return nil
	}
	path, err := opts.app.Export("", "")
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return nil
	}
	return printPath(cmd.OutOrStdout(), "exported", path, false)
}
