package usecase

import (
	"context"
	"testing"
	"time"

	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientFixture() (PatientUsecase, domainRepo.PatientRepository) {
	log := newTestLogger()
	patientRepo := repository.NewPatientRepository()
	return NewPatientUsecase(log, patientRepo, newTestActivityService(log)), patientRepo
}

func TestCreatePatientDefaults(t *testing.T) {
	usecase, _ := newPatientFixture()

	resp, err := usecase.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name: "  Emma Wilson  ",
		Age:  15,
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Emma Wilson", resp.Name)
	assert.Equal(t, entity.TreatmentNone, resp.Treatment)
	assert.Equal(t, entity.PatientStatusActive, resp.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.DateAdded)
	assert.Empty(t, resp.LastModified)
}

func TestCreatePatientValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.CreatePatientRequest
		wantErr error
	}{
		{"blank name", &dto.CreatePatientRequest{Name: "   ", Age: 20}, ErrPatientNameRequired},
		{"age zero", &dto.CreatePatientRequest{Name: "Emma Wilson", Age: 0}, ErrInvalidPatientAge},
		{"age too high", &dto.CreatePatientRequest{Name: "Emma Wilson", Age: 101}, ErrInvalidPatientAge},
		{"age negative", &dto.CreatePatientRequest{Name: "Emma Wilson", Age: -3}, ErrInvalidPatientAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, patientRepo := newPatientFixture()

			_, err := usecase.CreatePatient(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			patients, err := patientRepo.FindAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, patients, "rejected request must not mutate the store")
		})
	}
}

func TestGetPatientNotFound(t *testing.T) {
	usecase, _ := newPatientFixture()

	_, err := usecase.GetPatient(context.Background(), 999)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdatePatient(t *testing.T) {
	usecase, _ := newPatientFixture()

	created, err := usecase.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:      "Emma Wilson",
		Age:       15,
		Treatment: entity.TreatmentBraces,
	})
	require.NoError(t, err)

	updated, err := usecase.UpdatePatient(context.Background(), created.ID, &dto.UpdatePatientRequest{
		Name:   "Emma Wilson-Lee",
		Age:    16,
		Status: entity.PatientStatusInactive,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Emma Wilson-Lee", updated.Name)
	assert.Equal(t, 16, updated.Age)
	assert.Equal(t, entity.PatientStatusInactive, updated.Status)
	// Empty treatment in the request leaves the stored value alone
	assert.Equal(t, entity.TreatmentBraces, updated.Treatment)
	assert.Equal(t, created.DateAdded, updated.DateAdded)
	assert.Equal(t, time.Now().Format("2006-01-02"), updated.LastModified)
}

func TestUpdatePatientNotFound(t *testing.T) {
	usecase, _ := newPatientFixture()

	_, err := usecase.UpdatePatient(context.Background(), 42, &dto.UpdatePatientRequest{
		Name: "Nobody",
		Age:  30,
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGetAllPatientsInsertionOrder(t *testing.T) {
	usecase, _ := newPatientFixture()

	names := []string{"Emma Wilson", "Liam Carter", "Olivia Brooks"}
	for _, name := range names {
		_, err := usecase.CreatePatient(context.Background(), &dto.CreatePatientRequest{Name: name, Age: 20})
		require.NoError(t, err)
	}

	list, err := usecase.GetAllPatients(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(names), list.Total)
	for i, name := range names {
		assert.Equal(t, name, list.Patients[i].Name)
	}
}
