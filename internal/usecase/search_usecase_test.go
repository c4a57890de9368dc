package usecase

import (
	"context"
	"fmt"
	"testing"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchFixture struct {
	usecase         SearchUsecase
	patientRepo     domainRepo.PatientRepository
	appointmentRepo domainRepo.AppointmentRepository
	photoRepo       domainRepo.PhotoRepository
}

func newSearchFixture() *searchFixture {
	log := newTestLogger()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	photoRepo := repository.NewPhotoRepository()
	cfg := config.SearchConfig{MinQueryLength: 2, MaxResults: 10}
	return &searchFixture{
		usecase:         NewSearchUsecase(log, patientRepo, appointmentRepo, photoRepo, cfg),
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		photoRepo:       photoRepo,
	}
}

func TestSearchQueryTooShort(t *testing.T) {
	f := newSearchFixture()

	for _, query := range []string{"", "a", "  s  "} {
		_, err := f.usecase.Search(context.Background(), query)
		assert.ErrorIs(t, err, ErrQueryTooShort, "query %q", query)
	}
}

func TestSearchRanksAcrossCollections(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{
		ID: 1, Name: "Sarah Johnson", Treatment: entity.TreatmentInvisalign, Status: entity.PatientStatusActive,
	}))
	require.NoError(t, f.appointmentRepo.Create(ctx, &entity.Appointment{
		ID: 2, PatientID: 9, PatientName: "John Smith", Date: "2024-03-01", Time: "09:00",
		Type: "Consultation", Status: entity.AppointmentStatusScheduled,
		Notes: "sarah asked to join this visit",
	}))
	require.NoError(t, f.photoRepo.Create(ctx, &entity.TreatmentPhoto{
		ID: 3, PatientID: 1, PatientName: "Sarah Johnson",
		TreatmentType: entity.TreatmentTypeInvisalign, Stage: entity.StageProgress,
		Date: "2024-02-20", Title: "Aligner fit", Tags: []string{"sarah-johnson"},
	}))

	resp, err := f.usecase.Search(ctx, "sarah")
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	// Photo: patient 10 + tags 4. Patient: name 10. Appointment: notes 4.
	assert.Equal(t, int64(3), resp.Results[0].EntityID)
	assert.Equal(t, 14, resp.Results[0].Score)
	assert.Equal(t, []string{"patient", "tags"}, resp.Results[0].MatchedFields)

	assert.Equal(t, int64(1), resp.Results[1].EntityID)
	assert.Equal(t, 10, resp.Results[1].Score)
	assert.Equal(t, []string{"name"}, resp.Results[1].MatchedFields)

	assert.Equal(t, int64(2), resp.Results[2].EntityID)
	assert.Equal(t, 4, resp.Results[2].Score)
	assert.Equal(t, []string{"notes"}, resp.Results[2].MatchedFields)
}

func TestSearchSumsMatchingFields(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{
		ID:    1,
		Name:  "Sarah Johnson",
		Email: "sarah.johnson@example.com",
		Notes: "Sarah prefers afternoon visits",
	}))

	resp, err := f.usecase.Search(ctx, "Sarah")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	// name 10 + email 8 + notes 4
	assert.Equal(t, 22, resp.Results[0].Score)
	assert.Equal(t, []string{"name", "email", "notes"}, resp.Results[0].MatchedFields)
}

func TestSearchNoMatches(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{ID: 1, Name: "Sarah Johnson"}))

	resp, err := f.usecase.Search(ctx, "zyx")
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Results)
}

func TestSearchCapsResults(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("Brace Patient %02d", i+1),
		}))
	}

	resp, err := f.usecase.Search(ctx, "brace")
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Total)
	assert.Len(t, resp.Results, 10)
}

func TestSearchTiesKeepCollectionOrder(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{ID: 5, Name: "Mia Torres"}))
	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{ID: 6, Name: "Mia Alvarez"}))

	resp, err := f.usecase.Search(ctx, "mia")
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	assert.Equal(t, int64(5), resp.Results[0].EntityID)
	assert.Equal(t, int64(6), resp.Results[1].EntityID)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()

	require.NoError(t, f.patientRepo.Create(ctx, &entity.Patient{ID: 1, Name: "Sarah Johnson"}))

	for _, query := range []string{"SARAH", "sArAh", "  sarah  "} {
		resp, err := f.usecase.Search(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total, "query %q", query)
	}
}
