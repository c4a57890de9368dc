package repository

import (
	"context"

	"go-ortho-practice/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
}
