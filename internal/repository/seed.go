package repository

import (
	"context"
	"time"

	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
)

// Seed loads the sample dataset into the stores. The data is the demo
// practice: two patients, today's schedule, and a small treatment gallery.
func Seed(
	ctx context.Context,
	patientRepo domainRepo.PatientRepository,
	appointmentRepo domainRepo.AppointmentRepository,
	photoRepo domainRepo.PhotoRepository,
) error {
	today := time.Now().Format("2006-01-02")

	patients := []entity.Patient{
		{
			ID:        1,
			Name:      "John Smith",
			Age:       16,
			Email:     "john@email.com",
			Treatment: entity.TreatmentBraces,
			Status:    entity.PatientStatusActive,
			DateAdded: today,
		},
		{
			ID:        2,
			Name:      "Sarah Johnson",
			Age:       14,
			Email:     "sarah@email.com",
			Treatment: entity.TreatmentInvisalign,
			Status:    entity.PatientStatusActive,
			DateAdded: today,
		},
	}

	appointments := []entity.Appointment{
		{
			ID:          1,
			PatientID:   1,
			PatientName: "John Smith",
			Date:        today,
			Time:        "09:00",
			Type:        "Adjustment",
			Duration:    45,
			Status:      entity.AppointmentStatusScheduled,
			Notes:       "Regular adjustment appointment",
		},
		{
			ID:          2,
			PatientID:   2,
			PatientName: "Sarah Johnson",
			Date:        today,
			Time:        "10:30",
			Type:        "Consultation",
			Duration:    60,
			Status:      entity.AppointmentStatusScheduled,
			Notes:       "Initial consultation for Invisalign",
		},
		{
			ID:          3,
			PatientID:   1,
			PatientName: "John Smith",
			Date:        today,
			Time:        "14:00",
			Type:        "Follow-up",
			Duration:    30,
			Status:      entity.AppointmentStatusScheduled,
			Notes:       "Check progress after adjustment",
		},
	}

	photos := []entity.TreatmentPhoto{
		{
			ID:            1,
			PatientID:     1,
			PatientName:   "John Smith",
			TreatmentType: entity.TreatmentTypeBraces,
			Stage:         entity.StageBefore,
			Date:          "2024-01-15",
			Title:         "Initial Photos - Before Treatment",
			Description:   "Pre-treatment dental condition assessment",
			ImageURL:      "/images/samples/braces-before.jpg",
			Tags:          []string{"initial", "assessment", "braces"},
			Notes:         "Significant crowding in upper arch, mild spacing in lower arch",
		},
		{
			ID:            2,
			PatientID:     1,
			PatientName:   "John Smith",
			TreatmentType: entity.TreatmentTypeBraces,
			Stage:         entity.StageProgress,
			Date:          "2024-02-15",
			Title:         "1 Month Progress Check",
			Description:   "Initial alignment progress after bracket placement",
			ImageURL:      "/images/samples/braces-progress.jpg",
			Tags:          []string{"progress", "1month", "alignment"},
			Notes:         "Good initial movement, patient compliance excellent",
		},
		{
			ID:            3,
			PatientID:     2,
			PatientName:   "Sarah Johnson",
			TreatmentType: entity.TreatmentTypeInvisalign,
			Stage:         entity.StageBefore,
			Date:          "2024-01-20",
			Title:         "Invisalign - Initial Scan",
			Description:   "Digital scan for Invisalign treatment planning",
			ImageURL:      "/images/samples/invisalign-scan.jpg",
			Tags:          []string{"invisalign", "scan", "planning"},
			Notes:         "Minor crowding, excellent candidate for Invisalign",
		},
		{
			ID:            4,
			PatientID:     1,
			PatientName:   "John Smith",
			TreatmentType: entity.TreatmentTypeBraces,
			Stage:         entity.StageAdjustment,
			Date:          "2024-03-15",
			Title:         "Post-Adjustment Photos",
			Description:   "Progress after wire change and adjustment",
			ImageURL:      "/images/samples/braces-adjustment.jpg",
			Tags:          []string{"adjustment", "wire-change", "progress"},
			Notes:         "Increased arch wire gauge, excellent progress",
		},
		{
			ID:            5,
			PatientID:     2,
			PatientName:   "Sarah Johnson",
			TreatmentType: entity.TreatmentTypeInvisalign,
			Stage:         entity.StageProgress,
			Date:          "2024-02-20",
			Title:         "Invisalign Tray 5 Progress",
			Description:   "Progress check at tray 5 of 20",
			ImageURL:      "/images/samples/invisalign-tray5.jpg",
			Tags:          []string{"invisalign", "tray5", "progress"},
			Notes:         "Tracking well, patient compliance good",
		},
	}

	for i := range patients {
		if err := patientRepo.Create(ctx, &patients[i]); err != nil {
			return err
		}
	}
	for i := range appointments {
		if err := appointmentRepo.Create(ctx, &appointments[i]); err != nil {
			return err
		}
	}
	for i := range photos {
		if err := photoRepo.Create(ctx, &photos[i]); err != nil {
			return err
		}
	}
	return nil
}
