package repository

import (
	"context"

	"go-ortho-practice/internal/domain/entity"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.TreatmentPhoto) error
	FindByID(ctx context.Context, id int64) (*entity.TreatmentPhoto, error)
	FindAll(ctx context.Context) ([]entity.TreatmentPhoto, error)
}
