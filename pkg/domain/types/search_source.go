package types

// SearchSource names the strategy that produced a search result.
// Scores are only comparable within a single source.
type SearchSource string

const (
	SearchSourceVector SearchSource = "vector"
	SearchSourceText   SearchSource = "text"
	SearchSourceSlack  SearchSource = "slack_api"
)

// String returns the string representation of SearchSource
func (s SearchSource) String() string {
	return string(s)
}
