package entity

import "time"

// Activity type constants
const (
	ActivityPatientRegistered    = "patient_registered"
	ActivityPatientUpdated       = "patient_updated"
	ActivityAppointmentCompleted = "appointment_completed"
	ActivityAppointmentScheduled = "appointment_scheduled"
	ActivityPhotosOrganized      = "photos_organized"
)

// Activity is a single entry in the practice's recent-activity feed
type Activity struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
