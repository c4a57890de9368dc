package entity

// SearchResultType identifies which collection a search result came from
type SearchResultType string

const (
	SearchResultPatient     SearchResultType = "patient"
	SearchResultAppointment SearchResultType = "appointment"
	SearchResultPhoto       SearchResultType = "photo"
)

// SearchResult wraps an entity matched by a global search. It lives only
// for the duration of a single search invocation.
type SearchResult struct {
	Type          SearchResultType `json:"type"`
	EntityID      int64            `json:"entity_id"`
	Score         int              `json:"score"`
	MatchedFields []string         `json:"matched_fields"`
	Data          interface{}      `json:"data"`
}
