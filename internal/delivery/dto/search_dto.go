package dto

type SearchResultResponse struct {
	Type          string      `json:"type"`
	EntityID      int64       `json:"entity_id"`
	Score         int         `json:"score"`
	MatchedFields []string    `json:"matched_fields"`
	Data          interface{} `json:"data"`
}

type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []SearchResultResponse `json:"results"`
	Total   int                    `json:"total"`
}
