package usecase

import (
	"context"
	"testing"
	"time"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:          50 * 1024 * 1024,
		AutoApproveThreshold: 0.8,
		ActivityFeedSize:     50,
	}
}

type uploadFixture struct {
	usecase     SmartUploadUsecase
	patientRepo domainRepo.PatientRepository
	photoRepo   domainRepo.PhotoRepository
}

// newUploadFixture seeds two patients; rng drives the classification jitter
func newUploadFixture(t *testing.T, rng Rand) *uploadFixture {
	t.Helper()
	log := newTestLogger()
	patientRepo := repository.NewPatientRepository()
	photoRepo := repository.NewPhotoRepository()

	patients := []entity.Patient{
		{ID: 1, Name: "Sarah Johnson", Age: 14, Treatment: entity.TreatmentInvisalign, Status: entity.PatientStatusActive},
		{ID: 2, Name: "John Smith", Age: 16, Treatment: entity.TreatmentBraces, Status: entity.PatientStatusActive},
	}
	for i := range patients {
		require.NoError(t, patientRepo.Create(context.Background(), &patients[i]))
	}

	return &uploadFixture{
		usecase:     NewSmartUploadUsecase(log, patientRepo, photoRepo, newTestActivityService(log), rng, testUploadConfig()),
		patientRepo: patientRepo,
		photoRepo:   photoRepo,
	}
}

func imageFile(name string) dto.FileUpload {
	return dto.FileUpload{Name: name, Size: 1024, ContentType: "image/jpeg"}
}

func TestExtractDate(t *testing.T) {
	modified := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"iso with dashes", "sarah_2024-01-15_progress.jpg", "2024-01-15"},
		{"iso with underscores", "sarah_2024_01_15.jpg", "2024-01-15"},
		{"us order", "john-01-15-2024.jpg", "2024-01-15"},
		{"no date falls back to mtime", "sarah_progress.jpg", "2024-05-20"},
		{"garbage digits fall back to mtime", "scan_9999-99-99.jpg", "2024-05-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate(tt.fileName, modified))
		})
	}
}

func TestAnalyzeFiltersNonImages(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})

	resp, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("sarah_progress.jpg"),
		{Name: "notes.pdf", Size: 1024, ContentType: "application/pdf"},
		{Name: "huge.jpg", Size: 60 * 1024 * 1024, ContentType: "image/jpeg"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 2, resp.Skipped)
	assert.NotEmpty(t, resp.SessionID)
}

func TestAnalyzeRejectsBatchWithNoImages(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})

	_, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		{Name: "notes.pdf", Size: 1024, ContentType: "application/pdf"},
	}})
	assert.ErrorIs(t, err, ErrNoImageFiles)
}

func TestAnalyzeNoKeywordsYieldsDefaults(t *testing.T) {
	// Zero jitter pins every classification to its floor
	f := newUploadFixture(t, &stubRand{values: []float64{0}})

	resp, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("scan.jpg"),
	}})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	s := resp.Suggestions[0]

	// No name matched; the fallback picks a patient at low confidence
	assert.Equal(t, "Sarah Johnson", s.PatientName)
	assert.InDelta(t, 0.3, s.PatientConfidence, 1e-9)

	assert.Equal(t, string(entity.StageProgress), s.Stage)
	assert.InDelta(t, 0.4, s.StageConfidence, 1e-9)

	assert.Equal(t, string(entity.TreatmentTypeBraces), s.TreatmentType)
	assert.InDelta(t, 0.5, s.TreatmentConfidence, 1e-9)

	assert.InDelta(t, 0.4, s.OverallConfidence, 1e-9)
	assert.False(t, s.Approved)
}

func TestAnalyzeDetectsPatientFromFileName(t *testing.T) {
	f := newUploadFixture(t, &stubRand{values: []float64{0}})

	resp, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("sarah_johnson_2024-01-15.jpg"),
	}})
	require.NoError(t, err)

	s := resp.Suggestions[0]
	assert.Equal(t, int64(1), s.PatientID)
	assert.Equal(t, "Sarah Johnson", s.PatientName)
	assert.InDelta(t, 1.0, s.PatientConfidence, 1e-9)
	assert.Equal(t, "2024-01-15", s.ExtractedDate)
	assert.Contains(t, s.Tags, "sarah-johnson")
}

func TestAnalyzeTreatmentOverrideFromPatientRecord(t *testing.T) {
	// Full name match makes no patient rng call. Calls then go: four stage
	// entries, three treatment entries, then the override roll. A roll
	// above 0.3 replaces the keyword result with the patient's treatment.
	f := newUploadFixture(t, &stubRand{values: []float64{0, 0, 0, 0, 0, 0, 0, 0.9}})

	resp, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("sarah_johnson.jpg"),
	}})
	require.NoError(t, err)

	s := resp.Suggestions[0]
	assert.Equal(t, string(entity.TreatmentTypeInvisalign), s.TreatmentType)
	assert.InDelta(t, 0.8, s.TreatmentConfidence, 1e-9)
}

func TestAnalyzeKeywordSaturationCapsConfidence(t *testing.T) {
	f := newUploadFixture(t, &stubRand{values: []float64{0}})

	// Every completion-stage and braces keyword present; the override roll
	// of zero keeps the keyword result
	resp, err := f.usecase.Analyze(context.Background(), &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("john_smith_braces_bracket_wire_metal_ceramic_complete_final_end_finish_done_after.jpg"),
	}})
	require.NoError(t, err)

	s := resp.Suggestions[0]
	assert.Equal(t, string(entity.StageCompletion), s.Stage)
	assert.InDelta(t, 0.95, s.StageConfidence, 1e-9)
	assert.Equal(t, string(entity.TreatmentTypeBraces), s.TreatmentType)
	assert.InDelta(t, 0.9, s.TreatmentConfidence, 1e-9)

	// (1.0 + 0.95 + 0.9) / 3, above the auto-approve threshold
	assert.InDelta(t, 0.95, s.OverallConfidence, 1e-9)
}

func TestGetSessionWithoutAnalysis(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})

	_, err := f.usecase.GetSession(context.Background())
	assert.ErrorIs(t, err, ErrNoAnalysisSession)
}

func TestApproveSuggestion(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	s, err := f.usecase.ApproveSuggestion(ctx, 0)
	require.NoError(t, err)
	assert.True(t, s.Approved)

	_, err = f.usecase.ApproveSuggestion(ctx, 5)
	assert.ErrorIs(t, err, ErrSuggestionNotFound)

	_, err = f.usecase.ApproveSuggestion(ctx, -1)
	assert.ErrorIs(t, err, ErrSuggestionNotFound)
}

func TestEditSuggestion(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	patientID := int64(2)
	stage := string(entity.StageCompletion)
	title := "Final records"

	s, err := f.usecase.EditSuggestion(ctx, 0, &dto.EditSuggestionRequest{
		PatientID: &patientID,
		Stage:     &stage,
		Title:     &title,
	})
	require.NoError(t, err)

	// Human corrections are authoritative
	assert.Equal(t, int64(2), s.PatientID)
	assert.Equal(t, "John Smith", s.PatientName)
	assert.InDelta(t, 1.0, s.PatientConfidence, 1e-9)
	assert.Equal(t, stage, s.Stage)
	assert.InDelta(t, 1.0, s.StageConfidence, 1e-9)
	assert.Equal(t, title, s.Title)
}

func TestEditSuggestionUnknownPatient(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	patientID := int64(999)
	_, err = f.usecase.EditSuggestion(ctx, 0, &dto.EditSuggestionRequest{PatientID: &patientID})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCommitRequiresEligibleSuggestions(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	// Overall 0.4, below the threshold, and nothing approved
	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	_, err = f.usecase.Commit(ctx)
	assert.ErrorIs(t, err, ErrNoEligibleSuggestions)
}

func TestCommitApprovedSuggestion(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("sarah_johnson_2024-01-15.jpg")}})
	require.NoError(t, err)
	_, err = f.usecase.ApproveSuggestion(ctx, 0)
	require.NoError(t, err)

	resp, err := f.usecase.Commit(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Uploaded)

	photo := resp.Photos[0]
	assert.Equal(t, int64(1), photo.PatientID)
	assert.Equal(t, "Sarah Johnson", photo.PatientName)
	assert.Equal(t, "2024-01-15", photo.Date)
	assert.True(t, photo.AIGenerated)
	assert.Contains(t, photo.ImageURL, "sarah_johnson_2024-01-15.jpg")

	stored, err := f.photoRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// Session is spent after commit
	_, err = f.usecase.GetSession(ctx)
	assert.ErrorIs(t, err, ErrNoAnalysisSession)
}

func TestCommitAutoApprovesHighConfidence(t *testing.T) {
	f := newUploadFixture(t, &stubRand{values: []float64{0}})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{
		imageFile("john_smith_braces_bracket_wire_metal_ceramic_complete_final_end_finish_done_after.jpg"),
	}})
	require.NoError(t, err)

	resp, err := f.usecase.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Uploaded)
}

func TestCommitWithoutSession(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})

	_, err := f.usecase.Commit(context.Background())
	assert.ErrorIs(t, err, ErrNoAnalysisSession)
}

func TestUploadInProgressRejection(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	u := f.usecase.(*smartUploadUsecase)
	u.mu.Lock()
	u.inProgress = true
	u.mu.Unlock()

	_, err = f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("other.jpg")}})
	assert.ErrorIs(t, err, ErrUploadInProgress)

	_, err = f.usecase.Commit(ctx)
	assert.ErrorIs(t, err, ErrUploadInProgress)

	assert.ErrorIs(t, f.usecase.Reset(ctx), ErrUploadInProgress)
}

func TestResetClearsSession(t *testing.T) {
	f := newUploadFixture(t, &stubRand{})
	ctx := context.Background()

	_, err := f.usecase.Analyze(ctx, &dto.AnalyzeFilesRequest{Files: []dto.FileUpload{imageFile("scan.jpg")}})
	require.NoError(t, err)

	require.NoError(t, f.usecase.Reset(ctx))

	_, err = f.usecase.GetSession(ctx)
	assert.ErrorIs(t, err, ErrNoAnalysisSession)
}
