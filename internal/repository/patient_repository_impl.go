package repository

import (
	"context"
	"sync"

	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
)

type patientRepository struct {
	mu       sync.RWMutex
	ids      idAllocator
	patients []entity.Patient
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patient.ID == 0 {
		patient.ID = r.ids.next()
	} else {
		r.ids.track(patient.ID)
	}
	r.patients = append(r.patients, *patient)
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.patients {
		if r.patients[i].ID == id {
			patient := r.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

// FindAll returns patients in insertion order
func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]entity.Patient, len(r.patients))
	copy(patients, r.patients)
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.patients {
		if r.patients[i].ID == patient.ID {
			r.patients[i] = *patient
			return nil
		}
	}
	return nil
}
