package http

import (
	"net/http"

	"go-ortho-practice/internal/delivery/http/handler"
	"go-ortho-practice/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	photoHandler       *handler.PhotoHandler
	searchHandler      *handler.SearchHandler
	uploadHandler      *handler.SmartUploadHandler
	dashboardHandler   *handler.DashboardHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	photoHandler *handler.PhotoHandler,
	searchHandler *handler.SearchHandler,
	uploadHandler *handler.SmartUploadHandler,
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		photoHandler:       photoHandler,
		searchHandler:      searchHandler,
		uploadHandler:      uploadHandler,
		dashboardHandler:   dashboardHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}/auto-schedule", r.appointmentHandler.AutoScheduleNext).Methods(http.MethodPost)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPost)

	// Treatment gallery
	api.HandleFunc("/photos", r.photoHandler.GetPhotos).Methods(http.MethodGet)
	api.HandleFunc("/photos/counts", r.photoHandler.GetPhotoCounts).Methods(http.MethodGet)
	api.HandleFunc("/photos/{id}", r.photoHandler.GetPhoto).Methods(http.MethodGet)

	// Global search
	api.HandleFunc("/search", r.searchHandler.Search).Methods(http.MethodGet)

	// Smart upload
	api.HandleFunc("/uploads/analyze", r.uploadHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/uploads/session", r.uploadHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/uploads/suggestions/{index}/approve", r.uploadHandler.ApproveSuggestion).Methods(http.MethodPost)
	api.HandleFunc("/uploads/suggestions/{index}", r.uploadHandler.EditSuggestion).Methods(http.MethodPut)
	api.HandleFunc("/uploads/commit", r.uploadHandler.Commit).Methods(http.MethodPost)
	api.HandleFunc("/uploads/reset", r.uploadHandler.Reset).Methods(http.MethodPost)

	// Dashboard
	api.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/activity", r.dashboardHandler.GetRecentActivity).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
