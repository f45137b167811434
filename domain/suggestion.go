package domain

// SuggestionCandidate is one title/author pair fetched for prefix suggestions.
type SuggestionCandidate struct {
	Title  string
	Author string
}

// SuggestionResults is the response envelope for the suggestions endpoint.
type SuggestionResults struct {
	Suggestions []string `json:"suggestions"`
}
