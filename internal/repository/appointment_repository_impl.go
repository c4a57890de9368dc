package repository

import (
	"context"
	"sync"

	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
)

type appointmentRepository struct {
	mu           sync.RWMutex
	ids          idAllocator
	appointments []entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.ID == 0 {
		appointment.ID = r.ids.next()
	} else {
		r.ids.track(appointment.ID)
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			appointment := r.appointments[i]
			return &appointment, nil
		}
	}
	return nil, nil
}

// FindAll returns appointments in insertion order
func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]entity.Appointment, len(r.appointments))
	copy(appointments, r.appointments)
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appointments []entity.Appointment
	for i := range r.appointments {
		if r.appointments[i].PatientID == patientID {
			appointments = append(appointments, r.appointments[i])
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appointments []entity.Appointment
	for i := range r.appointments {
		if r.appointments[i].Date == date {
			appointments = append(appointments, r.appointments[i])
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointment.ID {
			r.appointments[i] = *appointment
			return nil
		}
	}
	return nil
}
