package dto

import "time"

// FileUpload carries the metadata of one file submitted for analysis
type FileUpload struct {
	Name        string    `json:"name" validate:"required"`
	Size        int64     `json:"size" validate:"gte=0"`
	ContentType string    `json:"content_type" validate:"required"`
	ModifiedAt  time.Time `json:"modified_at"`
}

type AnalyzeFilesRequest struct {
	Files []FileUpload `json:"files" validate:"required,min=1,dive"`
}

type SuggestionResponse struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`

	ExtractedDate string `json:"extracted_date"`

	PatientID         int64   `json:"patient_id,omitempty"`
	PatientName       string  `json:"patient_name,omitempty"`
	PatientConfidence float64 `json:"patient_confidence"`

	Stage           string  `json:"stage"`
	StageConfidence float64 `json:"stage_confidence"`

	TreatmentType       string  `json:"treatment_type"`
	TreatmentConfidence float64 `json:"treatment_confidence"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`

	OverallConfidence float64 `json:"overall_confidence"`
	Approved          bool    `json:"approved"`
}

type AnalysisResponse struct {
	SessionID   string               `json:"session_id"`
	Suggestions []SuggestionResponse `json:"suggestions"`
	Skipped     int                  `json:"skipped"`
	Total       int                  `json:"total"`
}

// EditSuggestionRequest overrides analyzer output for one suggestion.
// Nil fields are left untouched.
type EditSuggestionRequest struct {
	PatientID     *int64   `json:"patient_id"`
	Title         *string  `json:"title" validate:"omitempty,max=255"`
	Description   *string  `json:"description"`
	Stage         *string  `json:"stage" validate:"omitempty,oneof=before progress adjustment completion"`
	TreatmentType *string  `json:"treatment_type" validate:"omitempty,oneof=braces invisalign retainers"`
	Tags          []string `json:"tags"`
}

type CommitResponse struct {
	Uploaded int             `json:"uploaded"`
	Photos   []PhotoResponse `json:"photos"`
}
