package domain

import (
	"sort"
	"strings"
)

// PriorityTable maps a priority or task key to the recommended tool name.
type PriorityTable map[string]string

// DefaultPriorityTable merges the task selector, the "what matters most"
// priorities and the named recommendation slots into one table. Keys do
// not collide across the three groups.
func DefaultPriorityTable() PriorityTable {
	return PriorityTable{
		// tasks
		"Research with citations": "Perplexity",
		"Write long content":      "Claude",
		"Creative brainstorming":  "ChatGPT",
		"Video collaboration":     "Gemini",
		"Code debugging":          "Claude",
		"Current events":          "Perplexity",
		"Data analysis":           "Claude",

		// priorities
		"Current Information":   "Perplexity",
		"Long Context Analysis": "Claude",
		"Creative Output":       "ChatGPT",
		"Team Collaboration":    "Gemini",
		"Academic Research":     "Perplexity",
		"Code Quality":          "Claude",

		// recommendation slots
		"quick_answers":       "Perplexity",
		"long_documents":      "Claude",
		"creative_work":       "ChatGPT",
		"video_collaboration": "Gemini",
		"academic_research":   "Perplexity",
		"code_review":         "Claude",
		"brainstorming":       "ChatGPT",
		"screen_sharing":      "Gemini",
	}
}

// Lookup returns the tool name mapped to key. Surrounding whitespace in
// key is ignored.
func (p PriorityTable) Lookup(key string) (string, bool) {
	name, ok := p[strings.TrimSpace(key)]
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// Keys returns the table keys in sorted order.
func (p PriorityTable) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the table.
func (p PriorityTable) Clone() PriorityTable {
	out := make(PriorityTable, len(p))
	for key, name := range p {
		out[key] = name
	}
	return out
}
