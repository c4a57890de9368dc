package entity

// PhotoFilter is a domain-level filter for querying treatment photos.
// Facets are conjunctive; a zero value matches everything.
type PhotoFilter struct {
	TreatmentType string // "" or "all" matches all treatment types
	PatientID     int64  // 0 matches all patients
	Stage         string // "" matches all stages
}

// Matches reports whether the photo passes every facet of the filter
func (f PhotoFilter) Matches(photo *TreatmentPhoto) bool {
	if f.TreatmentType != "" && f.TreatmentType != "all" && string(photo.TreatmentType) != f.TreatmentType {
		return false
	}
	if f.PatientID != 0 && photo.PatientID != f.PatientID {
		return false
	}
	if f.Stage != "" && string(photo.Stage) != f.Stage {
		return false
	}
	return true
}

// PhotoSort selects the ordering of a filtered photo listing
type PhotoSort string

const (
	PhotoSortNewest  PhotoSort = "newest"
	PhotoSortOldest  PhotoSort = "oldest"
	PhotoSortPatient PhotoSort = "patient"
	PhotoSortStage   PhotoSort = "stage"
)
