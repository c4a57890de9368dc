package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCompleted = errors.New("appointment is already completed")
	ErrInvalidAppointmentDate      = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat           = errors.New("invalid time format, use HH:MM")
)

const dateLayout = "2006-01-02"

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID int64, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error)
	AutoScheduleNext(ctx context.Context, patientID int64) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	activityService *service.ActivityService
	scheduleCfg     config.ScheduleConfig
	practitioner    string
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	activityService *service.ActivityService,
	scheduleCfg config.ScheduleConfig,
	practitioner string,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		activityService: activityService,
		scheduleCfg:     scheduleCfg,
		practitioner:    practitioner,
	}
}

// CreateAppointment schedules a new appointment. The patient reference is
// weak: an unknown patient id is accepted and the name snapshot recorded
// as "Unknown".
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	patientName := "Unknown"
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient != nil {
		patientName = patient.Name
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		PatientName: patientName,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Duration:    req.Duration,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.activityService.Record(ctx, entity.ActivityAppointmentScheduled,
		fmt.Sprintf("Appointment scheduled for %s on %s at %s", patientName, appointment.Date, appointment.Time), "")

	u.log.Infof("Appointment created: id=%d, patient=%s, date=%s %s", appointment.ID, patientName, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	appointments, err := u.appointmentRepo.FindByDate(ctx, date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, ErrInvalidAppointmentDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.Type = req.Type
	appointment.Duration = req.Duration
	appointment.Notes = req.Notes

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CompleteAppointment marks an appointment completed. The transition is
// one-directional; completing twice is an illegal state transition. The
// response flags whether a follow-up auto-schedule should be offered,
// which is the case for braces patients.
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID int64, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.IsCompleted() {
		return nil, ErrAppointmentAlreadyCompleted
	}

	completedBy := req.CompletedBy
	if completedBy == "" {
		completedBy = u.practitioner
	}
	notes := req.Notes
	if notes == "" {
		notes = "Appointment completed successfully"
	}

	appointment.Complete(completedBy, notes, time.Now())

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	u.activityService.Record(ctx, entity.ActivityAppointmentCompleted,
		fmt.Sprintf("Appointment completed: %s", appointment.PatientName), completedBy)

	offerAutoSchedule := false
	patient, err := u.patientRepo.FindByID(ctx, appointment.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", appointment.PatientID, err)
	} else if patient != nil && patient.HasBraces() {
		offerAutoSchedule = true
	}

	u.log.Infof("Appointment completed: id=%d, patient=%s", appointment.ID, appointment.PatientName)
	return &dto.CompleteAppointmentResponse{
		Appointment:       *converter.AppointmentToResponse(appointment),
		OfferAutoSchedule: offerAutoSchedule,
	}, nil
}

// RescheduleAppointment applies the quick reschedule: one day forward with
// the single-hop weekend skip. A completed appointment cannot be moved.
func (u *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.IsCompleted() {
		return nil, ErrAppointmentAlreadyCompleted
	}

	current, err := time.Parse(dateLayout, appointment.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	newDate := skipWeekend(current.AddDate(0, 0, 1)).Format(dateLayout)
	appointment.Reschedule(newDate, u.practitioner, time.Now())

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to reschedule appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%d, from=%s, to=%s", appointment.ID, appointment.OriginalDate, appointment.Date)
	return converter.AppointmentToResponse(appointment), nil
}

// AutoScheduleNext computes and creates the next appointment for a
// recurring-treatment patient.
//
// Flow:
// 1. The patient's latest appointment by date is the base; with none, the
//    base is today and the time falls back to the configured default.
// 2. A prior appointment's time-of-day carries over.
// 3. The configured interval is added to the base date.
// 4. Saturday moves +2 days and Sunday +1, a single hop each. This is not
//    a skip-to-weekday loop; only one hop is ever applied.
func (u *appointmentUsecase) AutoScheduleNext(ctx context.Context, patientID int64) (*dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	baseDate := time.Now()
	suggestedTime := u.scheduleCfg.DefaultTime

	if last := latestAppointment(appointments); last != nil {
		parsed, err := time.Parse(dateLayout, last.Date)
		if err != nil {
			return nil, ErrInvalidAppointmentDate
		}
		baseDate = parsed
		suggestedTime = last.Time
	}

	nextDate := baseDate.AddDate(0, 0, u.scheduleCfg.IntervalDays)
	if u.scheduleCfg.SkipWeekends {
		nextDate = skipWeekend(nextDate)
	}

	appointment := &entity.Appointment{
		PatientID:   patientID,
		PatientName: patient.Name,
		Date:        nextDate.Format(dateLayout),
		Time:        suggestedTime,
		Type:        u.scheduleCfg.DefaultType,
		Duration:    u.scheduleCfg.DefaultDuration,
		Status:      entity.AppointmentStatusScheduled,
		Notes:       fmt.Sprintf("Auto-scheduled %d-day follow-up appointment", u.scheduleCfg.IntervalDays),
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create auto-scheduled appointment: %+v", err)
		return nil, err
	}

	u.activityService.Record(ctx, entity.ActivityAppointmentScheduled,
		fmt.Sprintf("Auto-scheduled follow-up for %s on %s", patient.Name, appointment.Date), "")

	u.log.Infof("Auto-scheduled appointment: id=%d, patient=%s, date=%s %s", appointment.ID, patient.Name, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// latestAppointment returns the appointment with the maximum date, taking
// the first one in collection order on ties. Unparseable dates are skipped.
func latestAppointment(appointments []entity.Appointment) *entity.Appointment {
	var latest *entity.Appointment
	var latestDate time.Time

	for i := range appointments {
		date, err := time.Parse(dateLayout, appointments[i].Date)
		if err != nil {
			continue
		}
		if latest == nil || date.After(latestDate) {
			latest = &appointments[i]
			latestDate = date
		}
	}
	return latest
}

// skipWeekend applies the single-hop weekend rule: Saturday +2, Sunday +1.
func skipWeekend(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	}
	return t
}
