package converter

import (
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Type:            appointment.Type,
		Duration:        appointment.Duration,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CompletedAt:     appointment.CompletedAt,
		CompletedBy:     appointment.CompletedBy,
		CompletionNotes: appointment.CompletionNotes,
		OriginalDate:    appointment.OriginalDate,
		RescheduledAt:   appointment.RescheduledAt,
		RescheduledBy:   appointment.RescheduledBy,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
