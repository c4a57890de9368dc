package repository

import (
	"context"

	"go-ortho-practice/internal/domain/entity"
)

type ActivityRepository interface {
	Record(ctx context.Context, activity *entity.Activity) error
	// Recent returns at most limit activities, newest first
	Recent(ctx context.Context, limit int) ([]entity.Activity, error)
}
