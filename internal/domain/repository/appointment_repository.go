package repository

import (
	"context"

	"go-ortho-practice/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
}
