package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// Appointment represents a scheduled patient visit.
//
// PatientName is a snapshot taken at creation time. Renaming a patient must
// not rewrite past appointment records, so this is not a live join.
// PatientID is a weak reference and may point to a patient that no
// longer exists; lookups that need the patient surface not-found explicitly.
type Appointment struct {
	ID          int64             `json:"id"`
	PatientID   int64             `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM
	Type        string            `json:"type"`
	Duration    int               `json:"duration"` // minutes
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`

	// Set when the appointment is completed
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CompletedBy     string     `json:"completed_by,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`

	// Set when the appointment is rescheduled
	OriginalDate  string     `json:"original_date,omitempty"`
	RescheduledAt *time.Time `json:"rescheduled_at,omitempty"`
	RescheduledBy string     `json:"rescheduled_by,omitempty"`
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsScheduled checks if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// Complete marks the appointment as completed. Status transitions are
// one-directional: a completed appointment never changes status again.
func (a *Appointment) Complete(by, notes string, at time.Time) {
	a.Status = AppointmentStatusCompleted
	a.CompletedAt = &at
	a.CompletedBy = by
	a.CompletionNotes = notes
}

// Reschedule moves the appointment to a new date, keeping the original
// date for the record.
func (a *Appointment) Reschedule(newDate, by string, at time.Time) {
	a.OriginalDate = a.Date
	a.Date = newDate
	a.Status = AppointmentStatusRescheduled
	a.RescheduledAt = &at
	a.RescheduledBy = by
}
