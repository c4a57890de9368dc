package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrQueryTooShort = errors.New("search query is too short")

type SearchUsecase interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// searchUsecase ranks patients, appointments and photos against a free-text
// query. Pure over a point-in-time snapshot of the stores; identical inputs
// always rank identically.
type searchUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	photoRepo       repository.PhotoRepository
	cfg             config.SearchConfig
}

func NewSearchUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	photoRepo repository.PhotoRepository,
	cfg config.SearchConfig,
) SearchUsecase {
	return &searchUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		photoRepo:       photoRepo,
		cfg:             cfg,
	}
}

func (u *searchUsecase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if len(query) < u.cfg.MinQueryLength {
		return nil, ErrQueryTooShort
	}
	term := strings.ToLower(query)

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients for search: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointments for search: %+v", err)
		return nil, err
	}
	photos, err := u.photoRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load photos for search: %+v", err)
		return nil, err
	}

	var results []entity.SearchResult

	for i := range patients {
		score, fields := scorePatient(&patients[i], term)
		if score > 0 {
			results = append(results, entity.SearchResult{
				Type:          entity.SearchResultPatient,
				EntityID:      patients[i].ID,
				Score:         score,
				MatchedFields: fields,
				Data:          patients[i],
			})
		}
	}
	for i := range appointments {
		score, fields := scoreAppointment(&appointments[i], term)
		if score > 0 {
			results = append(results, entity.SearchResult{
				Type:          entity.SearchResultAppointment,
				EntityID:      appointments[i].ID,
				Score:         score,
				MatchedFields: fields,
				Data:          appointments[i],
			})
		}
	}
	for i := range photos {
		score, fields := scorePhoto(&photos[i], term)
		if score > 0 {
			results = append(results, entity.SearchResult{
				Type:          entity.SearchResultPhoto,
				EntityID:      photos[i].ID,
				Score:         score,
				MatchedFields: fields,
				Data:          photos[i],
			})
		}
	}

	// Stable sort keeps collection order for equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > u.cfg.MaxResults {
		results = results[:u.cfg.MaxResults]
	}

	return &dto.SearchResponse{
		Query:   query,
		Results: converter.SearchResultsToResponses(results),
		Total:   len(results),
	}, nil
}

// contains reports a case-insensitive substring match against the already
// lowercased query term
func contains(value, term string) bool {
	return value != "" && strings.Contains(strings.ToLower(value), term)
}

func scorePatient(patient *entity.Patient, term string) (int, []string) {
	score := 0
	var fields []string

	if contains(patient.Name, term) {
		score += 10
		fields = append(fields, "name")
	}
	if contains(patient.Email, term) {
		score += 8
		fields = append(fields, "email")
	}
	if contains(patient.Phone, term) {
		score += 8
		fields = append(fields, "phone")
	}
	if contains(patient.Treatment, term) {
		score += 6
		fields = append(fields, "treatment")
	}
	if contains(patient.Notes, term) {
		score += 4
		fields = append(fields, "notes")
	}
	return score, fields
}

func scoreAppointment(appointment *entity.Appointment, term string) (int, []string) {
	score := 0
	var fields []string

	if contains(appointment.PatientName, term) {
		score += 10
		fields = append(fields, "patient")
	}
	if contains(appointment.Type, term) {
		score += 8
		fields = append(fields, "type")
	}
	if contains(string(appointment.Status), term) {
		score += 6
		fields = append(fields, "status")
	}
	if contains(appointment.Notes, term) {
		score += 4
		fields = append(fields, "notes")
	}
	if contains(appointment.Date, term) {
		score += 6
		fields = append(fields, "date")
	}
	if contains(appointment.Time, term) {
		score += 4
		fields = append(fields, "time")
	}
	return score, fields
}

func scorePhoto(photo *entity.TreatmentPhoto, term string) (int, []string) {
	score := 0
	var fields []string

	if contains(photo.PatientName, term) {
		score += 10
		fields = append(fields, "patient")
	}
	if contains(photo.Title, term) {
		score += 8
		fields = append(fields, "title")
	}
	if contains(photo.Description, term) {
		score += 6
		fields = append(fields, "description")
	}
	if contains(string(photo.TreatmentType), term) {
		score += 6
		fields = append(fields, "treatment")
	}
	if contains(string(photo.Stage), term) {
		score += 6
		fields = append(fields, "stage")
	}
	if contains(photo.Notes, term) {
		score += 4
		fields = append(fields, "notes")
	}
	for _, tag := range photo.Tags {
		if contains(tag, term) {
			score += 4
			fields = append(fields, "tags")
			break
		}
	}
	return score, fields
}
