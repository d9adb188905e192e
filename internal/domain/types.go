package domain

// Price describes a tool's pricing tiers.
type Price struct {
	Free bool    `json:"free" yaml:"free" toml:"free"`
	Paid float64 `json:"paid" yaml:"paid" toml:"paid" jsonschema:"monthly price of the paid tier in USD"`
}

// Tool is a single AI product record. List fields are in display order;
// the first element is the one shown as "top".
type Tool struct {
	BestFor    string         `json:"bestFor" yaml:"bestFor" toml:"bestFor"`
	Strengths  []string       `json:"strengths" yaml:"strengths" toml:"strengths"`
	Weaknesses []string       `json:"weaknesses" yaml:"weaknesses" toml:"weaknesses"`
	Nuances    []string       `json:"nuances" yaml:"nuances" toml:"nuances"`
	Price      Price          `json:"price" yaml:"price" toml:"price"`
	Scores     map[string]int `json:"scores" yaml:"scores" toml:"scores" jsonschema:"capability scores from 0 to 10 keyed by category"`
	Logo       string         `json:"logo,omitempty" yaml:"logo,omitempty" toml:"logo,omitempty"`
}

// Clone returns a deep copy of the tool.
func (t Tool) Clone() Tool {
	out := t
	out.Strengths = cloneStrings(t.Strengths)
	out.Weaknesses = cloneStrings(t.Weaknesses)
	out.Nuances = cloneStrings(t.Nuances)
	if t.Scores != nil {
		out.Scores = make(map[string]int, len(t.Scores))
		for category, score := range t.Scores {
			out.Scores[category] = score
		}
	}
	return out
}

// Score returns the tool's score for category, or 0 when it has none.
func (t Tool) Score(category string) int {
	return t.Scores[category]
}

// TopStrength returns the first strength, or "" when there are none.
func (t Tool) TopStrength() string {
	if len(t.Strengths) == 0 {
		return ""
	}
	return t.Strengths[0]
}

// TopNuance returns the first nuance, or "" when there are none.
func (t Tool) TopNuance() string {
	if len(t.Nuances) == 0 {
		return ""
	}
	return t.Nuances[0]
}

// Snapshot is a serializable deep copy of a catalog.
type Snapshot struct {
	Tools    map[string]Tool     `json:"tools" yaml:"tools" toml:"tools"`
	UseCases map[string][]string `json:"useCases" yaml:"useCases" toml:"useCases" jsonschema:"role name to tool names in preference order"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Tools:    make(map[string]Tool, len(s.Tools)),
		UseCases: make(map[string][]string, len(s.UseCases)),
	}
	for name, tool := range s.Tools {
		out.Tools[name] = tool.Clone()
	}
	for name, tools := range s.UseCases {
		out.UseCases[name] = cloneStrings(tools)
	}
	return out
}

// ToolPair holds two tools for side-by-side rendering.
type ToolPair struct {
	LeftName  string `json:"leftName"`
	Left      Tool   `json:"left"`
	RightName string `json:"rightName"`
	Right     Tool   `json:"right"`
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
