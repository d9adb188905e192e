package domain

import (
	"fmt"
	"sort"
)

// DefaultTeamMetricScore is the score of a tool the table does not rate
// for a metric.
const DefaultTeamMetricScore = 5

// TeamMetric rates tools on one team-specific use case.
type TeamMetric struct {
	Name   string         `json:"name" yaml:"name"`
	Scores map[string]int `json:"scores" yaml:"scores"`
}

// TeamMetricTable is an ordered list of team metrics. Unlike tool scores
// it lives outside the catalog, the same way a PriorityTable does.
type TeamMetricTable []TeamMetric

// DefaultTeamMetrics returns the team performance metrics shown under the
// comparison view.
func DefaultTeamMetrics() TeamMetricTable {
	return TeamMetricTable{
		{Name: "Marketing Content", Scores: map[string]int{"ChatGPT": 10, "Claude": 8, "Gemini": 6, "Perplexity": 4}},
		{Name: "Data Analysis", Scores: map[string]int{"ChatGPT": 7, "Claude": 10, "Gemini": 7, "Perplexity": 8}},
		{Name: "Market Research", Scores: map[string]int{"ChatGPT": 6, "Claude": 7, "Gemini": 7, "Perplexity": 10}},
		{Name: "Report Writing", Scores: map[string]int{"ChatGPT": 8, "Claude": 10, "Gemini": 7, "Perplexity": 6}},
		{Name: "Team Collaboration", Scores: map[string]int{"ChatGPT": 7, "Claude": 6, "Gemini": 10, "Perplexity": 4}},
	}
}

// Names returns the metric names in table order.
func (t TeamMetricTable) Names() []string {
	names := make([]string, 0, len(t))
	for _, metric := range t {
		names = append(names, metric.Name)
	}
	return names
}

// Score returns the rating of tool for metric, or DefaultTeamMetricScore
// when the metric does not rate the tool. ok is false for an unknown metric.
func (t TeamMetricTable) Score(metric, tool string) (score int, ok bool) {
	for _, m := range t {
		if m.Name != metric {
			continue
		}
		if score, rated := m.Scores[tool]; rated {
			return score, true
		}
		return DefaultTeamMetricScore, true
	}
	return 0, false
}

// Clone returns a deep copy of the table.
func (t TeamMetricTable) Clone() TeamMetricTable {
	if t == nil {
		return nil
	}
	out := make(TeamMetricTable, len(t))
	for i, metric := range t {
		scores := make(map[string]int, len(metric.Scores))
		for tool, score := range metric.Scores {
			scores[tool] = score
		}
		out[i] = TeamMetric{Name: metric.Name, Scores: scores}
	}
	return out
}

// Validate checks that metric names are set and unique and that every
// rating lies within [MinScore,MaxScore].
func (t TeamMetricTable) Validate() error {
	var problems []Problem
	seen := make(map[string]struct{}, len(t))
	for i, metric := range t {
		if metric.Name == "" {
			problems = append(problems, Problem{Err: ErrInvalidTeamMetrics, Detail: fmt.Sprintf("[%d]: name is required", i)})
			continue
		}
		if _, dup := seen[metric.Name]; dup {
			problems = append(problems, Problem{Err: ErrInvalidTeamMetrics, Detail: fmt.Sprintf("%q: duplicate metric", metric.Name)})
		}
		seen[metric.Name] = struct{}{}
		tools := make([]string, 0, len(metric.Scores))
		for tool := range metric.Scores {
			tools = append(tools, tool)
		}
		sort.Strings(tools)
		for _, tool := range tools {
			score := metric.Scores[tool]
			if score < MinScore || score > MaxScore {
				problems = append(problems, Problem{
					Err:    ErrInvalidScore,
					Detail: fmt.Sprintf("%s[%s] must be within [%d,%d], got %d", metric.Name, tool, MinScore, MaxScore, score),
				})
			}
		}
	}
	if len(problems) > 0 {
		return Invalid("validate team metrics", ErrInvalidTeamMetrics, problems...)
	}
	return nil
}

// BuildTeamMetricMatrix lays out team metric ratings for names, one column
// per metric in table order. Every name must be a catalog tool; tools the
// table does not rate get DefaultTeamMetricScore.
func BuildTeamMetricMatrix(snapshot Snapshot, table TeamMetricTable, names []string) (ScoreMatrix, error) {
	matrix := ScoreMatrix{
		Tools:      append([]string(nil), names...),
		Categories: table.Names(),
		Values:     make([][]int, 0, len(names)),
	}
	for _, name := range names {
		if _, ok := snapshot.Tools[name]; !ok {
			return ScoreMatrix{}, NotFound("team metrics", ErrToolNotFound, name)
		}
		row := make([]int, len(table))
		for j, metric := range table {
			score, rated := metric.Scores[name]
			if !rated {
				score = DefaultTeamMetricScore
			}
			row[j] = score
		}
		matrix.Values = append(matrix.Values, row)
	}
	return matrix, nil
}
