package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Name:         patient.Name,
		Age:          patient.Age,
		Gender:       patient.Gender,
		Email:        patient.Email,
		Phone:        patient.Phone,
		Treatment:    patient.Treatment,
		Status:       patient.Status,
		Notes:        patient.Notes,
		DateAdded:    patient.DateAdded,
		LastModified: patient.LastModified,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
