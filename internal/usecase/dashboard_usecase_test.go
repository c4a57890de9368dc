package usecase

import (
	"context"
	"testing"
	"time"

	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/repository"
	"go-ortho-practice/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	log := newTestLogger()
	ctx := context.Background()

	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	photoRepo := repository.NewPhotoRepository()
	activityService := newTestActivityService(log)

	require.NoError(t, patientRepo.Create(ctx, &entity.Patient{ID: 1, Name: "Sarah Johnson", Status: entity.PatientStatusActive}))
	require.NoError(t, patientRepo.Create(ctx, &entity.Patient{ID: 2, Name: "John Smith", Status: entity.PatientStatusActive}))
	require.NoError(t, patientRepo.Create(ctx, &entity.Patient{ID: 3, Name: "Ava Chen", Status: entity.PatientStatusInactive}))

	today := time.Now().Format("2006-01-02")
	require.NoError(t, appointmentRepo.Create(ctx, &entity.Appointment{ID: 10, PatientID: 1, Date: today, Time: "09:00", Status: entity.AppointmentStatusScheduled}))
	require.NoError(t, appointmentRepo.Create(ctx, &entity.Appointment{ID: 11, PatientID: 2, Date: "2020-01-01", Time: "09:00", Status: entity.AppointmentStatusCompleted}))

	require.NoError(t, photoRepo.Create(ctx, &entity.TreatmentPhoto{ID: 20, PatientID: 1, Date: today}))

	usecase := NewDashboardUsecase(log, patientRepo, appointmentRepo, photoRepo, activityService)

	stats, err := usecase.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalPatients)
	assert.Equal(t, 2, stats.ActivePatients)
	assert.Equal(t, 1, stats.TodaysAppointments)
	assert.Equal(t, 1, stats.TotalPhotos)
}

func TestDashboardRecentActivityNewestFirst(t *testing.T) {
	log := newTestLogger()
	ctx := context.Background()

	activityService := service.NewActivityService(log, repository.NewActivityRepository(50))
	activityService.Record(ctx, entity.ActivityPatientRegistered, "New patient registered: Sarah Johnson", "")
	activityService.Record(ctx, entity.ActivityAppointmentCompleted, "Appointment completed: Sarah Johnson", "Dr. Denisa")

	usecase := NewDashboardUsecase(log,
		repository.NewPatientRepository(),
		repository.NewAppointmentRepository(),
		repository.NewPhotoRepository(),
		activityService,
	)

	resp, err := usecase.GetRecentActivity(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	assert.Equal(t, entity.ActivityAppointmentCompleted, resp.Activities[0].Type)
	assert.Equal(t, entity.ActivityPatientRegistered, resp.Activities[1].Type)
}
