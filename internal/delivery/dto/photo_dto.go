package dto

import "time"

type PhotoResponse struct {
	ID            int64    `json:"id"`
	PatientID     int64    `json:"patient_id"`
	PatientName   string   `json:"patient_name"`
	TreatmentType string   `json:"treatment_type"`
	Stage         string   `json:"stage"`
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	ImageURL      string   `json:"image_url"`
	Tags          []string `json:"tags,omitempty"`
	Notes         string   `json:"notes,omitempty"`

	UploadDate   *time.Time `json:"upload_date,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	FileType     string     `json:"file_type,omitempty"`
	AIGenerated  bool       `json:"ai_generated,omitempty"`
	AIConfidence float64    `json:"ai_confidence,omitempty"`
}

type PhotoListResponse struct {
	Photos []PhotoResponse `json:"photos"`
	Total  int             `json:"total"`
}

// PhotoCountsResponse mirrors the gallery tab counters
type PhotoCountsResponse struct {
	All        int `json:"all"`
	Braces     int `json:"braces"`
	Invisalign int `json:"invisalign"`
	Retainers  int `json:"retainers"`
}
