package domain

func testSnapshot() Snapshot {
	return Snapshot{
		Tools: map[string]Tool{
			"ChatGPT": {
				BestFor:   "Creative professionals and general users",
				Strengths: []string{"General tasks", "Creative writing"},
				Nuances:   []string{"Best voice mode"},
				Price:     Price{Free: true, Paid: 20},
				Scores:    map[string]int{"Writing": 9, "Research": 6, "Creative": 10},
			},
			"Claude": {
				BestFor:   "Writers and analysts",
				Strengths: []string{"Long documents"},
				Nuances:   []string{"Superior context retention"},
				Price:     Price{Free: true, Paid: 20},
				Scores:    map[string]int{"Writing": 10, "Research": 5, "Creative": 9},
			},
			"Gemini": {
				BestFor: "Google users",
				Price:   Price{Free: true, Paid: 20},
				Scores:  map[string]int{"Writing": 7, "Research": 8, "Creative": 6},
			},
			"Perplexity": {
				BestFor:   "Researchers",
				Strengths: []string{"Real-time research"},
				Nuances:   []string{"Academic citations"},
				Price:     Price{Free: false, Paid: 25},
				Scores:    map[string]int{"Writing": 6, "Research": 10, "Creative": 3},
			},
		},
		UseCases: map[string][]string{
			"Researchers": {"Perplexity", "Claude", "Gemini"},
			"Developers":  {"Claude", "ChatGPT", "Gemini"},
		},
	}
}
