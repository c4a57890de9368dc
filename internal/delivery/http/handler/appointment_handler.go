package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"
	"go-ortho-practice/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAppointmentDate, usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

// GetAllAppointments lists every appointment, or only one day's schedule
// when the date query parameter is present
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		appointments, err := h.appointmentUsecase.GetAppointmentsByDate(r.Context(), date)
		if err != nil {
			switch err {
			case usecase.ErrInvalidAppointmentDate:
				response.Error(w, http.StatusBadRequest, err.Error(), nil)
			default:
				response.InternalServerError(w, "Failed to list appointments")
			}
			return
		}
		response.Success(w, http.StatusOK, "", appointments)
		return
	}

	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidAppointmentDate, usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	// The completion body is optional
	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.appointmentUsecase.CompleteAppointment(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentAlreadyCompleted:
			response.Conflict(w, "Appointment is already completed")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment marked as completed", result)
}

func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	appointment, err := h.appointmentUsecase.RescheduleAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentAlreadyCompleted:
			response.Conflict(w, "Cannot reschedule a completed appointment")
		default:
			response.InternalServerError(w, "Failed to reschedule appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled", appointment)
}

func (h *AppointmentHandler) AutoScheduleNext(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	appointment, err := h.appointmentUsecase.AutoScheduleNext(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to auto-schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment auto-scheduled", appointment)
}
