package domain

import (
	"strings"
	"time"

	"fursan/utils/arabic"
)

// SortMode selects the ordering of search results.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDateDesc  SortMode = "date_desc"
	SortDateAsc   SortMode = "date_asc"
)

// ParseSortMode resolves a raw sort parameter, falling back to relevance.
// Relevance means the store's natural order; there is no scoring function.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortDateDesc:
		return SortDateDesc
	case SortDateAsc:
		return SortDateAsc
	default:
		return SortRelevance
	}
}

// Result caps are fixed by contract, not configurable per request.
const (
	ArticleResultCap = 50
	SectionResultCap = 20

	SuggestionCap             = 10
	SuggestionArticleFetchCap = 10
	SuggestionSectionFetchCap = 5
	SuggestionMinPrefixLen    = 2
)

const dateLayout = "2006-01-02"

// SearchQuery is the compiled form of a search request: trimmed term,
// normalized match pattern, resolved filters and sort order.
type SearchQuery struct {
	Raw       string
	Term      string
	Pattern   string
	SectionID string
	Author    string
	Tags      []string
	From      *time.Time
	To        *time.Time
	Sort      SortMode
}

// NewSearchQuery compiles raw request parameters into a SearchQuery.
// The term is trimmed and normalized into a hamza-equivalent pattern; Raw
// keeps the term exactly as the client sent it for the response echo. Tags
// split on comma with per-tag trimming; empty entries are dropped.
// Unparseable dates are silently ignored rather than rejected.
func NewSearchQuery(term, sectionID, author, tags, fromDate, toDate, sortBy string) SearchQuery {
	q := SearchQuery{
		Raw:       term,
		Term:      strings.TrimSpace(term),
		SectionID: strings.TrimSpace(sectionID),
		Author:    strings.TrimSpace(author),
		Sort:      ParseSortMode(sortBy),
	}

	if q.Term != "" {
		q.Pattern = arabic.NormalizePattern(q.Term)
	}

	for _, tag := range strings.Split(tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			q.Tags = append(q.Tags, trimmed)
		}
	}

	if from, err := time.Parse(dateLayout, strings.TrimSpace(fromDate)); err == nil {
		q.From = &from
	}
	if to, err := time.Parse(dateLayout, strings.TrimSpace(toDate)); err == nil {
		// The bound is inclusive at day granularity: the whole to_date day
		// is inside the range.
		end := to.Add(24 * time.Hour)
		q.To = &end
	}

	return q
}

// IsNoOp reports whether the query short-circuits to an empty result set.
// An empty term with no section or author filter returns nothing, even when
// tag or date filters are present; that behavior is part of the contract.
func (q SearchQuery) IsNoOp() bool {
	return q.Term == "" && q.SectionID == "" && q.Author == ""
}

// Filters is the echo of resolved filters returned in the response envelope.
func (q SearchQuery) Filters() SearchFilters {
	f := SearchFilters{SortBy: string(q.Sort)}
	if q.SectionID != "" {
		f.SectionID = &q.SectionID
	}
	if q.Author != "" {
		f.Author = &q.Author
	}
	if q.From != nil {
		s := q.From.Format(dateLayout)
		f.FromDate = &s
	}
	if q.To != nil {
		// Undo the end-of-day adjustment so the echo matches the request.
		s := q.To.Add(-24 * time.Hour).Format(dateLayout)
		f.ToDate = &s
	}
	return f
}

// SearchFilters echoes the effective filters for client-side display.
type SearchFilters struct {
	SectionID *string `json:"section_id"`
	Author    *string `json:"author"`
	FromDate  *string `json:"from_date"`
	ToDate    *string `json:"to_date"`
	SortBy    string  `json:"sort_by"`
}

// SearchResults is the response envelope for a search request.
type SearchResults struct {
	Articles     []Article     `json:"articles"`
	Sections     []Section     `json:"sections"`
	TotalResults int           `json:"total_results"`
	Query        string        `json:"query"`
	Filters      SearchFilters `json:"filters"`
}

// EmptySearchResults is the envelope returned by the no-op short circuit.
func EmptySearchResults(q SearchQuery) SearchResults {
	return SearchResults{
		Articles:     []Article{},
		Sections:     []Section{},
		TotalResults: 0,
		Query:        q.Raw,
		Filters:      q.Filters(),
	}
}
