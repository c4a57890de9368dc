package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

func SearchResultToResponse(result *entity.SearchResult) *dto.SearchResultResponse {
	if result == nil {
		return nil
	}

	return &dto.SearchResultResponse{
		Type:          string(result.Type),
		EntityID:      result.EntityID,
		Score:         result.Score,
		MatchedFields: result.MatchedFields,
		Data:          result.Data,
	}
}

func SearchResultsToResponses(results []entity.SearchResult) []dto.SearchResultResponse {
	responses := make([]dto.SearchResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, *SearchResultToResponse(&results[i]))
	}
	return responses
}
