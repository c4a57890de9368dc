package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

func PhotoToResponse(photo *entity.TreatmentPhoto) *dto.PhotoResponse {
	if photo == nil {
		return nil
	}

	return &dto.PhotoResponse{
		ID:            photo.ID,
		PatientID:     photo.PatientID,
		PatientName:   photo.PatientName,
		TreatmentType: string(photo.TreatmentType),
		Stage:         string(photo.Stage),
		Date:          photo.Date,
		Title:         photo.Title,
		Description:   photo.Description,
		ImageURL:      photo.ImageURL,
		Tags:          photo.Tags,
		Notes:         photo.Notes,
		UploadDate:    photo.UploadDate,
		FileName:      photo.FileName,
		FileSize:      photo.FileSize,
		FileType:      photo.FileType,
		AIGenerated:   photo.AIGenerated,
		AIConfidence:  photo.AIConfidence,
	}
}

func PhotosToResponses(photos []entity.TreatmentPhoto) []dto.PhotoResponse {
	responses := make([]dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		responses = append(responses, *PhotoToResponse(&photos[i]))
	}
	return responses
}
