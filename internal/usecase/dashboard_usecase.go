package usecase

import (
	"context"
	"time"

	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/service"

	"github.com/sirupsen/logrus"
)

const recentActivityLimit = 20

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetRecentActivity(ctx context.Context) (*dto.ActivityListResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	photoRepo       repository.PhotoRepository
	activityService *service.ActivityService
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	photoRepo repository.PhotoRepository,
	activityService *service.ActivityService,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		photoRepo:       photoRepo,
		activityService: activityService,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients for stats: %+v", err)
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	todays, err := u.appointmentRepo.FindByDate(ctx, today)
	if err != nil {
		u.log.Warnf("Failed to load today's appointments: %+v", err)
		return nil, err
	}

	photos, err := u.photoRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load photos for stats: %+v", err)
		return nil, err
	}

	active := 0
	for i := range patients {
		if patients[i].IsActive() {
			active++
		}
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:      len(patients),
		ActivePatients:     active,
		TodaysAppointments: len(todays),
		TotalPhotos:        len(photos),
	}, nil
}

func (u *dashboardUsecase) GetRecentActivity(ctx context.Context) (*dto.ActivityListResponse, error) {
	activities, err := u.activityService.Recent(ctx, recentActivityLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent activity: %+v", err)
		return nil, err
	}

	return &dto.ActivityListResponse{
		Activities: converter.ActivitiesToResponses(activities),
		Total:      len(activities),
	}, nil
}
