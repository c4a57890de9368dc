package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientNameRequired = errors.New("patient name is required")
	ErrInvalidPatientAge   = errors.New("patient age must be between 1 and 100")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID int64) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	activityService *service.ActivityService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	activityService *service.ActivityService,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		patientRepo:     patientRepo,
		activityService: activityService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPatientNameRequired
	}
	if req.Age < 1 || req.Age > 100 {
		return nil, ErrInvalidPatientAge
	}

	treatment := req.Treatment
	if treatment == "" {
		treatment = entity.TreatmentNone
	}

	patient := &entity.Patient{
		Name:      name,
		Age:       req.Age,
		Gender:    req.Gender,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Treatment: treatment,
		Status:    entity.PatientStatusActive,
		Notes:     strings.TrimSpace(req.Notes),
		DateAdded: time.Now().Format("2006-01-02"),
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.activityService.Record(ctx, entity.ActivityPatientRegistered,
		fmt.Sprintf("New patient registered: %s", patient.Name), "")

	u.log.Infof("Patient created: id=%d, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// UpdatePatient replaces the mutable fields of a patient record. The id and
// date-added are never rewritten; names on past appointments and photos keep
// their creation-time snapshots.
func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPatientNameRequired
	}
	if req.Age < 1 || req.Age > 100 {
		return nil, ErrInvalidPatientAge
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Name = name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.Email = strings.TrimSpace(req.Email)
	patient.Phone = strings.TrimSpace(req.Phone)
	if req.Treatment != "" {
		patient.Treatment = req.Treatment
	}
	if req.Status != "" {
		patient.Status = req.Status
	}
	patient.Notes = strings.TrimSpace(req.Notes)
	patient.LastModified = time.Now().Format("2006-01-02")

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Patient updated: id=%d, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient), nil
}
