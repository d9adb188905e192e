package validator

import (
	"fmt"
	"strings"

	"aicompare/internal/domain"
)

// ValidateUseCase checks the shape of a use-case list. Unknown tool names
// are returned separately so callers can report them as a group.
func ValidateUseCase(name string, tools []string, known map[string]domain.Tool) (problems []domain.Problem, unknown []string) {
	if strings.TrimSpace(name) == "" {
		problems = append(problems, domain.Problem{Err: domain.ErrInvalidUseCase, Detail: "name is required"})
	}
	if len(tools) == 0 {
		problems = append(problems, domain.Problem{Err: domain.ErrInvalidUseCase, Detail: "at least one tool is required"})
	}

	seen := make(map[string]struct{}, len(tools))
	for i, tool := range tools {
		if _, dup := seen[tool]; dup {
			problems = append(problems, domain.Problem{
				Err:    domain.ErrInvalidUseCase,
				Detail: fmt.Sprintf("tools[%d]: duplicate %q", i, tool),
			})
			continue
		}
		seen[tool] = struct{}{}
		if _, ok := known[tool]; !ok {
			unknown = append(unknown, tool)
		}
	}
	return problems, unknown
}
