package repository

import (
	"context"
	"sync"

	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
)

// activityRepository keeps a bounded in-memory feed; the oldest entries
// are dropped once capacity is reached.
type activityRepository struct {
	mu         sync.RWMutex
	ids        idAllocator
	capacity   int
	activities []entity.Activity
}

func NewActivityRepository(capacity int) domainRepo.ActivityRepository {
	return &activityRepository{capacity: capacity}
}

func (r *activityRepository) Record(ctx context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity.ID = r.ids.next()
	r.activities = append(r.activities, *activity)
	if len(r.activities) > r.capacity {
		r.activities = r.activities[len(r.activities)-r.capacity:]
	}
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.activities) {
		limit = len(r.activities)
	}

	// Newest first
	activities := make([]entity.Activity, 0, limit)
	for i := len(r.activities) - 1; i >= len(r.activities)-limit; i-- {
		activities = append(activities, r.activities[i])
	}
	return activities, nil
}
