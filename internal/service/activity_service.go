package service

import (
	"context"
	"time"

	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ActivityService records practice events into the recent-activity feed.
// Recording is best-effort: a failure is logged and never fails the
// operation that triggered it.
type ActivityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityRepository
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		log:          log,
		activityRepo: activityRepo,
	}
}

func (s *ActivityService) Record(ctx context.Context, activityType, message, actor string) {
	activity := &entity.Activity{
		Type:       activityType,
		Message:    message,
		Actor:      actor,
		OccurredAt: time.Now(),
	}

	if err := s.activityRepo.Record(ctx, activity); err != nil {
		s.log.Warnf("Failed to record activity: %+v", err)
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]entity.Activity, error) {
	return s.activityRepo.Recent(ctx, limit)
}
