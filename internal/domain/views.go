package domain

import (
	"fmt"
	"sort"
)

// Leader is one row of the category leaders board.
type Leader struct {
	Category string `json:"category"`
	Tool     string `json:"tool"`
	Score    int    `json:"score"`
}

// ComparisonRow is one row of the detailed comparison table.
type ComparisonRow struct {
	Tool          string  `json:"tool"`
	BestFor       string  `json:"bestFor"`
	TopStrength   string  `json:"topStrength"`
	UniqueFeature string  `json:"uniqueFeature"`
	Free          bool    `json:"free"`
	ProPrice      float64 `json:"proPrice"`
	OverallScore  float64 `json:"overallScore"`
}

// ScoreMatrix is a tools by categories grid of scores, used for heatmaps,
// grouped bars and radar series. Values[i][j] is the score of Tools[i] in
// Categories[j].
type ScoreMatrix struct {
	Tools      []string `json:"tools"`
	Categories []string `json:"categories"`
	Values     [][]int  `json:"values"`
}

// RecommendFor resolves priorityKey through table and returns the mapped tool.
func RecommendFor(snapshot Snapshot, priorityKey string, table PriorityTable) (Tool, error) {
	const op = "recommend"
	name, ok := table.Lookup(priorityKey)
	if !ok {
		return Tool{}, NotFound(op, ErrPriorityNotFound, priorityKey)
	}
	tool, ok := snapshot.Tools[name]
	if !ok {
		return Tool{}, NotFound(op, ErrToolNotFound, name).WithMeta("priority", priorityKey)
	}
	return tool.Clone(), nil
}

// CategoryLeader returns the name with the highest score in category among
// names. Missing categories count as 0; ties go to the earliest name.
func CategoryLeader(snapshot Snapshot, category string, names []string) (string, error) {
	const op = "category leader"
	if len(names) == 0 {
		return "", Invalid(op, ErrEmptySelection)
	}
	leader := ""
	best := 0
	for i, name := range names {
		tool, ok := snapshot.Tools[name]
		if !ok {
			return "", NotFound(op, ErrToolNotFound, name)
		}
		score := tool.Score(category)
		if i == 0 || score > best {
			leader = name
			best = score
		}
	}
	return leader, nil
}

// CategoryLeaders computes the leader of each category among names.
func CategoryLeaders(snapshot Snapshot, categories []string, names []string) ([]Leader, error) {
	leaders := make([]Leader, 0, len(categories))
	for _, category := range categories {
		name, err := CategoryLeader(snapshot, category, names)
		if err != nil {
			return nil, err
		}
		leaders = append(leaders, Leader{
			Category: category,
			Tool:     name,
			Score:    snapshot.Tools[name].Score(category),
		})
	}
	return leaders, nil
}

// OverallScore returns the arithmetic mean of the tool's scores.
func OverallScore(tool Tool) (float64, error) {
	if len(tool.Scores) == 0 {
		return 0, Invalid("overall score", ErrEmptyScores)
	}
	total := 0
	for _, score := range tool.Scores {
		total += score
	}
	return float64(total) / float64(len(tool.Scores)), nil
}

// SideBySide returns two distinct tools unchanged for comparison.
func SideBySide(snapshot Snapshot, nameA, nameB string) (ToolPair, error) {
	const op = "side by side"
	if nameA == nameB {
		return ToolPair{}, Invalid(op, ErrSelfComparison, Problem{Detail: fmt.Sprintf("%q", nameA)})
	}
	var missing []Problem
	for _, name := range []string{nameA, nameB} {
		if _, ok := snapshot.Tools[name]; !ok {
			missing = append(missing, Problem{Err: ErrToolNotFound, Detail: fmt.Sprintf("%q not in catalog", name)})
		}
	}
	if len(missing) > 0 {
		return ToolPair{}, Invalid(op, ErrInvalidTool, missing...)
	}
	return ToolPair{
		LeftName:  nameA,
		Left:      snapshot.Tools[nameA].Clone(),
		RightName: nameB,
		Right:     snapshot.Tools[nameB].Clone(),
	}, nil
}

// ComparisonTable builds one row per name, in input order.
func ComparisonTable(snapshot Snapshot, names []string) ([]ComparisonRow, error) {
	const op = "comparison table"
	rows := make([]ComparisonRow, 0, len(names))
	for _, name := range names {
		tool, ok := snapshot.Tools[name]
		if !ok {
			return nil, NotFound(op, ErrToolNotFound, name)
		}
		overall, err := OverallScore(tool)
		if err != nil {
			return nil, Wrap(CodeInvalidArgument, op, err).WithMeta("tool", name)
		}
		rows = append(rows, ComparisonRow{
			Tool:          name,
			BestFor:       tool.BestFor,
			TopStrength:   tool.TopStrength(),
			UniqueFeature: tool.TopNuance(),
			Free:          tool.Price.Free,
			ProPrice:      tool.Price.Paid,
			OverallScore:  overall,
		})
	}
	return rows, nil
}

// BuildScoreMatrix lays out scores for names across categories. An empty
// categories list selects every category present in the snapshot.
func BuildScoreMatrix(snapshot Snapshot, names []string, categories []string) (ScoreMatrix, error) {
	if len(categories) == 0 {
		categories = Categories(snapshot)
	}
	matrix := ScoreMatrix{
		Tools:      append([]string(nil), names...),
		Categories: append([]string(nil), categories...),
		Values:     make([][]int, 0, len(names)),
	}
	for _, name := range names {
		tool, ok := snapshot.Tools[name]
		if !ok {
			return ScoreMatrix{}, NotFound("score matrix", ErrToolNotFound, name)
		}
		row := make([]int, len(categories))
		for j, category := range categories {
			row[j] = tool.Score(category)
		}
		matrix.Values = append(matrix.Values, row)
	}
	return matrix, nil
}

// Categories returns the sorted union of score categories across tools.
func Categories(snapshot Snapshot) []string {
	set := make(map[string]struct{})
	for _, tool := range snapshot.Tools {
		for category := range tool.Scores {
			set[category] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// ToolNames returns the snapshot's tool names in sorted order.
func ToolNames(snapshot Snapshot) []string {
	names := make([]string, 0, len(snapshot.Tools))
	for name := range snapshot.Tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UseCaseNames returns the snapshot's use-case names in sorted order.
func UseCaseNames(snapshot Snapshot) []string {
	names := make([]string, 0, len(snapshot.UseCases))
	for name := range snapshot.UseCases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatScore renders an overall score the way the dashboard shows it.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f/10", score)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
