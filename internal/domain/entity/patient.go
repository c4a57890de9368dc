package entity

// Patient represents a patient record in the practice
type Patient struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Treatment    string `json:"treatment"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
	DateAdded    string `json:"date_added"`
	LastModified string `json:"last_modified,omitempty"`
}

// Treatment constants
const (
	TreatmentBraces     = "Braces"
	TreatmentInvisalign = "Invisalign"
	TreatmentRetainers  = "Retainers"
	TreatmentNone       = "None"
)

// Patient status constants
const (
	PatientStatusActive   = "Active"
	PatientStatusInactive = "Inactive"
)

// IsActive checks if the patient is currently in active treatment
func (p *Patient) IsActive() bool {
	return p.Status == PatientStatusActive
}

// HasBraces checks if the patient's current treatment is braces
func (p *Patient) HasBraces() bool {
	return p.Treatment == TreatmentBraces
}
