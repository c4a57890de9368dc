package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

func ActivitiesToResponses(activities []entity.Activity) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, dto.ActivityResponse{
			Type:       activity.Type,
			Message:    activity.Message,
			Actor:      activity.Actor,
			OccurredAt: activity.OccurredAt,
		})
	}
	return responses
}
