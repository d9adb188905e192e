package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"aicompare/internal/app"
	"aicompare/internal/domain"
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printNames(w io.Writer, label string, names []string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{label: names})
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

func printTool(w io.Writer, name string, tool domain.Tool, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"name": name, "tool": tool})
	}
	fmt.Fprint(w, renderToolCard(name, tool))
	return nil
}

func renderToolCard(name string, tool domain.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "best for: %s\n", tool.BestFor)
	fmt.Fprintf(&b, "price: %s\n", formatPrice(tool.Price))
	if overall, err := domain.OverallScore(tool); err == nil {
		fmt.Fprintf(&b, "overall: %s\n", domain.FormatScore(overall))
	}
	writeList(&b, "strengths", tool.Strengths)
	writeList(&b, "weaknesses", tool.Weaknesses)
	writeList(&b, "nuances", tool.Nuances)
	if len(tool.Scores) > 0 {
		b.WriteString("scores:\n")
		categories := make([]string, 0, len(tool.Scores))
		for category := range tool.Scores {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(&b, "  %s: %d\n", category, tool.Scores[category])
		}
	}
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func formatPrice(price domain.Price) string {
	tier := "no free tier"
	if price.Free {
		tier = "free tier"
	}
	return fmt.Sprintf("%s, pro $%s/mo", tier, strconv.FormatFloat(price.Paid, 'f', -1, 64))
}

func printUseCases(w io.Writer, useCases map[string][]string, names []string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"useCases": useCases})
	}
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(useCases[name], ", "))
	}
	return nil
}

func printRecommendation(w io.Writer, rec app.Recommendation, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, rec)
	}
	fmt.Fprintf(w, "%s -> %s\n", rec.Key, rec.Name)
	fmt.Fprintf(w, "best for: %s\n", rec.Tool.BestFor)
	if top := rec.Tool.TopStrength(); top != "" {
		fmt.Fprintf(w, "top strength: %s\n", top)
	}
	return nil
}

func printLeaders(w io.Writer, leaders []domain.Leader, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"leaders": leaders})
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tLEADER\tSCORE")
	for _, leader := range leaders {
		fmt.Fprintf(tw, "%s\t%s\t%d/10\n", leader.Category, leader.Tool, leader.Score)
	}
	return tw.Flush()
}

func printComparisonTable(w io.Writer, rows []domain.ComparisonRow, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"rows": rows})
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TOOL\tBEST FOR\tTOP STRENGTH\tUNIQUE FEATURE\tFREE\tPRO PRICE\tOVERALL")
	for _, row := range rows {
		free := "no"
		if row.Free {
			free = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t$%s/mo\t%s\n",
			row.Tool,
			row.BestFor,
			row.TopStrength,
			row.UniqueFeature,
			free,
			strconv.FormatFloat(row.ProPrice, 'f', -1, 64),
			domain.FormatScore(row.OverallScore),
		)
	}
	return tw.Flush()
}

func printSideBySide(w io.Writer, pair domain.ToolPair, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, pair)
	}
	renderer := lipgloss.NewRenderer(w)
	column := renderer.NewStyle().Width(48).PaddingRight(2)
	left := column.Render(renderToolCard(pair.LeftName, pair.Left))
	right := column.Render(renderToolCard(pair.RightName, pair.Right))
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	return nil
}

func printMatrix(w io.Writer, matrix domain.ScoreMatrix, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, matrix)
	}
	renderer := lipgloss.NewRenderer(w)
	header := renderer.NewStyle().Bold(true)
	high := renderer.NewStyle().Foreground(lipgloss.Color("2"))
	mid := renderer.NewStyle().Foreground(lipgloss.Color("3"))
	low := renderer.NewStyle().Foreground(lipgloss.Color("1"))

	tw := newTable(w)
	fmt.Fprint(tw, header.Render("TOOL"))
	for _, category := range matrix.Categories {
		fmt.Fprint(tw, "\t"+header.Render(category))
	}
	fmt.Fprintln(tw)
	for i, name := range matrix.Tools {
		fmt.Fprint(tw, name)
		for _, score := range matrix.Values[i] {
			style := low
			switch {
			case score >= 9:
				style = high
			case score >= 7:
				style = mid
			}
			fmt.Fprint(tw, "\t"+style.Render(strconv.Itoa(score)))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, summary domain.CatalogSummary, etag string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"etag": etag, "summary": summary})
	}
	fmt.Fprintf(w, "etag=%s\n", etag)
	fmt.Fprintf(w, "tools=%d useCases=%d freeTier=%d lowestPro=$%s/mo\n",
		summary.TotalTools,
		summary.TotalUseCases,
		summary.FreeTierTools,
		strconv.FormatFloat(summary.LowestProPrice, 'f', -1, 64),
	)
	fmt.Fprintf(w, "categories: %s\n", strings.Join(summary.Categories, ", "))

	names := make([]string, 0, len(summary.OverallScores))
	for name := range summary.OverallScores {
		names = append(names, name)
	}
	sort.Strings(names)
	tw := newTable(w)
	fmt.Fprintln(tw, "TOOL\tOVERALL\tPRIMARY PICKS")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", name, domain.FormatScore(summary.OverallScores[name]), summary.PrimaryPicks[name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(summary.UnscoredTools) > 0 {
		fmt.Fprintf(w, "unscored: %s\n", strings.Join(summary.UnscoredTools, ", "))
	}
	return nil
}

func printDiff(w io.Writer, diff domain.CatalogDiff, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, diff)
	}
	if diff.IsEmpty() {
		fmt.Fprintln(w, "no differences")
		return nil
	}
	writeDiffLine(w, "+ tool", diff.AddedTools)
	writeDiffLine(w, "- tool", diff.RemovedTools)
	writeDiffLine(w, "~ tool", diff.UpdatedTools)
	writeDiffLine(w, "+ use case", diff.AddedUseCases)
	writeDiffLine(w, "- use case", diff.RemovedUseCases)
	writeDiffLine(w, "~ use case", diff.ReorderedUseCase)
	return nil
}

func writeDiffLine(w io.Writer, prefix string, names []string) {
	for _, name := range names {
		fmt.Fprintf(w, "%s %s\n", prefix, name)
	}
}

func printPath(w io.Writer, label string, path string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{label: path})
	}
	fmt.Fprintf(w, "%s=%s\n", label, path)
	return nil
}
