package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

func SuggestionToResponse(index int, suggestion *entity.PhotoSuggestion) *dto.SuggestionResponse {
	if suggestion == nil {
		return nil
	}

	return &dto.SuggestionResponse{
		Index:               index,
		FileName:            suggestion.FileName,
		FileSize:            suggestion.FileSize,
		FileType:            suggestion.FileType,
		ExtractedDate:       suggestion.ExtractedDate,
		PatientID:           suggestion.PatientID,
		PatientName:         suggestion.PatientName,
		PatientConfidence:   suggestion.PatientConfidence,
		Stage:               string(suggestion.Stage),
		StageConfidence:     suggestion.StageConfidence,
		TreatmentType:       string(suggestion.TreatmentType),
		TreatmentConfidence: suggestion.TreatmentConfidence,
		Title:               suggestion.Title,
		Description:         suggestion.Description,
		Tags:                suggestion.Tags,
		OverallConfidence:   suggestion.OverallConfidence,
		Approved:            suggestion.Approved,
	}
}

func SuggestionsToResponses(suggestions []entity.PhotoSuggestion) []dto.SuggestionResponse {
	responses := make([]dto.SuggestionResponse, 0, len(suggestions))
	for i := range suggestions {
		responses = append(responses, *SuggestionToResponse(i, &suggestions[i]))
	}
	return responses
}
