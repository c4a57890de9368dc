package entity

import "time"

// TreatmentType identifies the orthodontic treatment a photo documents
type TreatmentType string

const (
	TreatmentTypeBraces     TreatmentType = "braces"
	TreatmentTypeInvisalign TreatmentType = "invisalign"
	TreatmentTypeRetainers  TreatmentType = "retainers"
)

// Stage is a treatment-progress milestone
type Stage string

const (
	StageBefore     Stage = "before"
	StageProgress   Stage = "progress"
	StageAdjustment Stage = "adjustment"
	StageCompletion Stage = "completion"
)

// StageOrder is the fixed ordinal used when sorting photos by stage
var StageOrder = map[Stage]int{
	StageBefore:     1,
	StageProgress:   2,
	StageAdjustment: 3,
	StageCompletion: 4,
}

// TreatmentPhoto represents a clinical photo in the treatment gallery.
// PatientName is a creation-time snapshot, same as on Appointment.
type TreatmentPhoto struct {
	ID            int64         `json:"id"`
	PatientID     int64         `json:"patient_id"`
	PatientName   string        `json:"patient_name"`
	TreatmentType TreatmentType `json:"treatment_type"`
	Stage         Stage         `json:"stage"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url"`
	Tags          []string      `json:"tags,omitempty"`
	Notes         string        `json:"notes,omitempty"`

	// Provenance, set only on photos produced by the smart-upload path
	UploadDate   *time.Time `json:"upload_date,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	FileType     string     `json:"file_type,omitempty"`
	AIGenerated  bool       `json:"ai_generated,omitempty"`
	AIConfidence float64    `json:"ai_confidence,omitempty"`
}

// StageLabel returns the display label for a stage
func StageLabel(s Stage) string {
	switch s {
	case StageBefore:
		return "Before Treatment"
	case StageProgress:
		return "Progress Check"
	case StageAdjustment:
		return "Post-Adjustment"
	case StageCompletion:
		return "Treatment Complete"
	}
	return string(s)
}

// TreatmentLabel returns the display label for a treatment type
func TreatmentLabel(t TreatmentType) string {
	switch t {
	case TreatmentTypeBraces:
		return "Braces"
	case TreatmentTypeInvisalign:
		return "Invisalign"
	case TreatmentTypeRetainers:
		return "Retainers"
	}
	return string(t)
}
