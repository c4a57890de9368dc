package dto

// CreatePatientRequest is the typed input boundary for registering a patient
type CreatePatientRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Age       int    `json:"age" validate:"required,gte=1,lte=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Treatment string `json:"treatment" validate:"omitempty,oneof=Braces Invisalign Retainers None"`
	Notes     string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Age       int    `json:"age" validate:"required,gte=1,lte=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Treatment string `json:"treatment" validate:"omitempty,oneof=Braces Invisalign Retainers None"`
	Status    string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Notes     string `json:"notes"`
}

type PatientResponse struct {
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

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
