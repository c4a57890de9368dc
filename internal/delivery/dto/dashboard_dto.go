package dto

import "time"

type DashboardStatsResponse struct {
	TotalPatients      int `json:"total_patients"`
	ActivePatients     int `json:"active_patients"`
	TodaysAppointments int `json:"todays_appointments"`
	TotalPhotos        int `json:"total_photos"`
}

type ActivityResponse struct {
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}
