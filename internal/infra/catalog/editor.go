package catalog

import (
	"strings"

	"aicompare/internal/domain"
)

// ToolEdit is an edit-form submission for one tool. List fields are
// multi-line text, one entry per line. Nil pointers and nil maps leave
// the current value in place.
type ToolEdit struct {
	BestFor    *string
	Strengths  *string
	Weaknesses *string
	Nuances    *string
	Free       *bool
	Paid       *float64
	// Scores replaces only the listed categories.
	Scores map[string]int
}

// ApplyToolEdit merges edit into the named tool and writes it through
// SetTool, so the usual validation applies and a rejected edit changes
// nothing. The logo is always carried over.
func ApplyToolEdit(store *Store, name string, edit ToolEdit) (domain.Tool, error) {
	current, err := store.GetTool(name)
	if err != nil {
		return domain.Tool{}, err
	}

	next := current.Clone()
	if edit.BestFor != nil {
		next.BestFor = strings.TrimSpace(*edit.BestFor)
	}
	if edit.Strengths != nil {
		next.Strengths = SplitLines(*edit.Strengths)
	}
	if edit.Weaknesses != nil {
		next.Weaknesses = SplitLines(*edit.Weaknesses)
	}
	if edit.Nuances != nil {
		next.Nuances = SplitLines(*edit.Nuances)
	}
	if edit.Free != nil {
		next.Price.Free = *edit.Free
	}
	if edit.Paid != nil {
		next.Price.Paid = *edit.Paid
	}
	if len(edit.Scores) > 0 {
		if next.Scores == nil {
			next.Scores = make(map[string]int, len(edit.Scores))
		}
		for category, score := range edit.Scores {
			next.Scores[strings.TrimSpace(category)] = score
		}
	}

	if err := store.SetTool(name, next); err != nil {
		return domain.Tool{}, err
	}
	return next, nil
}

// SplitLines turns text-area content into a list: one entry per line,
// trimmed, blank lines dropped.
func SplitLines(text string) []string {
	return cleanLines(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}
