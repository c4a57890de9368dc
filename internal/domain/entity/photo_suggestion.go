package entity

import "time"

// FileInfo describes an uploaded file as seen by the smart-upload analyzer.
// Only metadata is inspected; file contents are never read.
type FileInfo struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// PhotoSuggestion is the analyzer's proposed organization for one uploaded
// file. It exists only for the duration of a smart-upload session and is
// discarded after commit or reset.
type PhotoSuggestion struct {
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`

	ExtractedDate string `json:"extracted_date"` // YYYY-MM-DD

	PatientID         int64   `json:"patient_id,omitempty"`
	PatientName       string  `json:"patient_name,omitempty"`
	PatientConfidence float64 `json:"patient_confidence"`

	Stage           Stage   `json:"stage"`
	StageConfidence float64 `json:"stage_confidence"`

	TreatmentType       TreatmentType `json:"treatment_type"`
	TreatmentConfidence float64       `json:"treatment_confidence"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	OverallConfidence float64 `json:"overall_confidence"`
	Approved          bool    `json:"approved"`
}
