package validator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aicompare/internal/domain"
)

// ValidateTool checks a tool record before it is written.
func ValidateTool(name string, tool domain.Tool) []domain.Problem {
	var problems []domain.Problem

	if strings.TrimSpace(name) == "" {
		problems = append(problems, domain.Problem{Err: domain.ErrInvalidTool, Detail: "name is required"})
	}
	switch paid := tool.Price.Paid; {
	case math.IsNaN(paid) || math.IsInf(paid, 0):
		problems = append(problems, domain.Problem{
			Err:    domain.ErrInvalidPrice,
			Detail: fmt.Sprintf("price.paid must be a finite number, got %g", paid),
		})
	case paid < 0:
		problems = append(problems, domain.Problem{
			Err:    domain.ErrNegativePrice,
			Detail: fmt.Sprintf("price.paid must be >= 0, got %g", paid),
		})
	}

	categories := make([]string, 0, len(tool.Scores))
	for category := range tool.Scores {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		if strings.TrimSpace(category) == "" {
			problems = append(problems, domain.Problem{Err: domain.ErrInvalidTool, Detail: "scores: category name must not be empty"})
			continue
		}
		score := tool.Scores[category]
		if score < domain.MinScore || score > domain.MaxScore {
			problems = append(problems, domain.Problem{
				Err:    domain.ErrInvalidScore,
				Detail: fmt.Sprintf("scores[%s] must be within [%d,%d], got %d", category, domain.MinScore, domain.MaxScore, score),
			})
		}
	}

	problems = append(problems, validateEntries("strengths", tool.Strengths)...)
	problems = append(problems, validateEntries("weaknesses", tool.Weaknesses)...)
	problems = append(problems, validateEntries("nuances", tool.Nuances)...)
	return problems
}

func validateEntries(field string, values []string) []domain.Problem {
	var problems []domain.Problem
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, domain.Problem{
				Err:    domain.ErrInvalidTool,
				Detail: fmt.Sprintf("%s[%d] must not be empty", field, i),
			})
		}
	}
	return problems
}
