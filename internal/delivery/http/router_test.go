package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/delivery/http/handler"
	"go-ortho-practice/internal/delivery/http/middleware"
	"go-ortho-practice/internal/repository"
	"go-ortho-practice/internal/service"
	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"
	"go-ortho-practice/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0 }

// newTestRouter wires the full stack against seeded in-memory stores
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	photoRepo := repository.NewPhotoRepository()
	activityRepo := repository.NewActivityRepository(50)

	require.NoError(t, repository.Seed(context.Background(), patientRepo, appointmentRepo, photoRepo))

	activityService := service.NewActivityService(log, activityRepo)
	customValidator := validator.NewValidator()

	scheduleCfg := config.ScheduleConfig{IntervalDays: 14, DefaultType: "Adjustment", DefaultDuration: 45, DefaultTime: "10:00", SkipWeekends: true}
	searchCfg := config.SearchConfig{MinQueryLength: 2, MaxResults: 10}
	uploadCfg := config.UploadConfig{MaxFileSize: 50 * 1024 * 1024, AutoApproveThreshold: 0.8, ActivityFeedSize: 50}

	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, activityService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, activityService, scheduleCfg, "Dr. Denisa")
	photoUsecase := usecase.NewPhotoUsecase(log, photoRepo)
	searchUsecase := usecase.NewSearchUsecase(log, patientRepo, appointmentRepo, photoRepo, searchCfg)
	uploadUsecase := usecase.NewSmartUploadUsecase(log, patientRepo, photoRepo, activityService, fixedRand{}, uploadCfg)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, appointmentRepo, photoRepo, activityService)

	router := NewRouter(
		handler.NewPatientHandler(patientUsecase, customValidator),
		handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		handler.NewPhotoHandler(photoUsecase),
		handler.NewSearchHandler(searchUsecase),
		handler.NewSmartUploadHandler(uploadUsecase, customValidator),
		handler.NewDashboardHandler(dashboardUsecase),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestPatientEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/patients", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":      "Emma Wilson",
		"age":       15,
		"treatment": "Braces",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name": "No Age Given",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp = decodeResponse(t, rec)
	assert.False(t, resp.Success)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/patients/999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAppointmentCompleteEndpointConflict(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/appointments/1/complete", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/appointments/1/complete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAutoScheduleEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/patients/1/auto-schedule", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/patients/424242/auto-schedule", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/search?q=sarah", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/search?q=a", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhotoEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/photos?treatment=braces&sort=oldest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/photos/counts", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/photos/999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSmartUploadFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/uploads/analyze", map[string]interface{}{
		"files": []map[string]interface{}{
			{"name": "sarah_johnson_2024-01-15.jpg", "size": 1024, "content_type": "image/jpeg"},
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/uploads/suggestions/0/approve", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/uploads/commit", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The session is spent after commit
	rec = doRequest(t, router, http.MethodGet, "/api/v1/uploads/session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/stats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/activity", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
