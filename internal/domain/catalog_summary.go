package domain

// CatalogSummary aggregates catalog metadata.
type CatalogSummary struct {
	TotalTools     int                `json:"totalTools"`
	TotalUseCases  int                `json:"totalUseCases"`
	FreeTierTools  int                `json:"freeTierTools"`
	Categories     []string           `json:"categories"`
	OverallScores  map[string]float64 `json:"overallScores"`
	PrimaryPicks   map[string]int     `json:"primaryPicks"`
	UnscoredTools  []string           `json:"unscoredTools,omitempty"`
	LowestProPrice float64            `json:"lowestProPrice"`
}

// BuildCatalogSummary computes a summary view of the snapshot. Tools
// without scores are listed in UnscoredTools instead of OverallScores.
// PrimaryPicks counts how many use cases rank each tool first.
func BuildCatalogSummary(snapshot Snapshot) CatalogSummary {
	summary := CatalogSummary{
		TotalTools:    len(snapshot.Tools),
		TotalUseCases: len(snapshot.UseCases),
		Categories:    Categories(snapshot),
		OverallScores: make(map[string]float64, len(snapshot.Tools)),
		PrimaryPicks:  make(map[string]int),
	}

	first := true
	for _, name := range ToolNames(snapshot) {
		tool := snapshot.Tools[name]
		if tool.Price.Free {
			summary.FreeTierTools++
		}
		if first || tool.Price.Paid < summary.LowestProPrice {
			summary.LowestProPrice = tool.Price.Paid
			first = false
		}
		overall, err := OverallScore(tool)
		if err != nil {
			summary.UnscoredTools = append(summary.UnscoredTools, name)
			continue
		}
		summary.OverallScores[name] = overall
	}

	for _, tools := range snapshot.UseCases {
		if len(tools) == 0 {
			continue
		}
		summary.PrimaryPicks[tools[0]]++
	}

	return summary
}
