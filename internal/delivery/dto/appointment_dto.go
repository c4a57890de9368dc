package dto

import "time"

type CreateAppointmentRequest struct {
	PatientID int64  `json:"patient_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Type      string `json:"type" validate:"required,max=100"`
	Duration  int    `json:"duration" validate:"required,gte=5,lte=240"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Type     string `json:"type" validate:"required,max=100"`
	Duration int    `json:"duration" validate:"required,gte=5,lte=240"`
	Notes    string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	CompletedBy string `json:"completed_by" validate:"omitempty,max=255"`
	Notes       string `json:"notes"`
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`

	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     string     `json:"completed_by,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`

	OriginalDate  string     `json:"original_date,omitempty"`
	RescheduledAt *time.Time `json:"rescheduled_at,omitempty"`
	RescheduledBy string     `json:"rescheduled_by,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// CompleteAppointmentResponse reports the completed appointment and whether
// a follow-up auto-schedule should be offered (braces patients).
type CompleteAppointmentResponse struct {
	Appointment       AppointmentResponse `json:"appointment"`
	OfferAutoSchedule bool                `json:"offer_auto_schedule"`
}
