package catalog

import "aicompare/internal/domain"

// DefaultSeed returns the built-in dataset a session starts from when no
// seed file is configured.
func DefaultSeed() domain.Snapshot {
	return domain.Snapshot{
		Tools: map[string]domain.Tool{
			"ChatGPT": {
				Logo:       "https://cdn.oaistatic.com/_next/static/media/apple-touch-icon.82af6fe1.png",
				Strengths:  []string{"General tasks", "Coding with Code Interpreter", "Creative writing", "Conversational AI", "Custom GPTs", "DALL-E integration"},
				Weaknesses: []string{"Can be verbose", "Knowledge cutoff issues", "Sometimes hallucinates", "No native citations"},
				Nuances:    []string{"Best voice mode", "Excellent mobile app", "Strong ecosystem", "Canvas for editing"},
				BestFor:    "Creative professionals and general users",
				Price:      domain.Price{Free: true, Paid: 20},
				Scores: map[string]int{
					"Writing":      9,
					"Coding":       9,
					"Research":     6,
					"Analysis":     7,
					"Creative":     10,
					"Conversation": 10,
					"Current Info": 5,
				},
			},
			"Claude": {
				Logo:       "https://www-cdn.anthropic.com/images/claude-app-icon.png",
				Strengths:  []string{"Long documents (200K tokens)", "Deep analysis", "Nuanced writing", "Code debugging", "Artifacts feature", "Projects for context"},
				Weaknesses: []string{"No image generation", "No web search", "Can be overly cautious", "Limited integrations"},
				Nuances:    []string{"Best for long-form content", "Superior context retention", "Excellent at following complex instructions", "Artifacts for iterative work"},
				BestFor:    "Writers, analysts, and developers working with complex documents",
				Price:      domain.Price{Free: true, Paid: 20},
				Scores: map[string]int{
					"Writing":      10,
					"Coding":       10,
					"Research":     5,
					"Analysis":     10,
					"Creative":     9,
					"Conversation": 8,
					"Current Info": 5,
				},
			},
			"Gemini": {
				Logo:       "https://www.gstatic.com/lamda/images/gemini_favicon_f069958c85030456e93de685481c559f160ea06b.png",
				Strengths:  []string{"Google integration", "Multilingual", "Multimodal", "Fast responses", "Best video calls", "Screen sharing"},
				Weaknesses: []string{"Less consistent", "Smaller community", "Less refined outputs", "Limited customization"},
				Nuances:    []string{"BEST video call & screen sharing features", "Seamless Google Workspace integration", "Real-time collaboration", "YouTube analysis"},
				BestFor:    "Google users, video meetings, and visual learners",
				Price:      domain.Price{Free: true, Paid: 20},
				Scores: map[string]int{
					"Writing":      7,
					"Coding":       7,
					"Research":     8,
					"Analysis":     7,
					"Creative":     6,
					"Conversation": 7,
					"Current Info": 8,
				},
			},
			"Perplexity": {
				Logo:       "https://www.perplexity.ai/favicon.ico",
				Strengths:  []string{"Real-time research", "Source citations", "Current events", "Academic mode", "Focus mode", "Multiple search engines"},
				Weaknesses: []string{"Not creative", "Limited conversation memory", "No code execution", "Basic UI"},
				Nuances:    []string{"Chats NOT in focus - BEST for pure search", "Pro searches with multiple models", "Academic citations", "Daily news digest"},
				BestFor:    "Researchers, students, and fact-checkers",
				Price:      domain.Price{Free: true, Paid: 20},
				Scores: map[string]int{
					"Writing":      6,
					"Coding":       5,
					"Research":     10,
					"Analysis":     8,
					"Creative":     3,
					"Conversation": 5,
					"Current Info": 10,
				},
			},
		},
		UseCases: map[string][]string{
			"Marketing Teams":  {"ChatGPT", "Claude", "Perplexity"},
			"Data Analysts":    {"Claude", "Perplexity", "Gemini"},
			"Content Writers":  {"Claude", "ChatGPT", "Perplexity"},
			"Developers":       {"Claude", "ChatGPT", "Gemini"},
			"Researchers":      {"Perplexity", "Claude", "Gemini"},
			"Project Managers": {"Gemini", "Claude", "ChatGPT"},
		},
	}
}
