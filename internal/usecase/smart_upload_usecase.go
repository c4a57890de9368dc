package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"go-ortho-practice/config"
	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"
	"go-ortho-practice/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoImageFiles          = errors.New("no valid image files selected")
	ErrUploadInProgress      = errors.New("an upload is already in progress")
	ErrNoAnalysisSession     = errors.New("no analysis session is active")
	ErrSuggestionNotFound    = errors.New("suggestion not found")
	ErrNoEligibleSuggestions = errors.New("no approved suggestions to upload")
)

// Rand supplies the jitter term mixed into classification confidences.
// It is injected so tests can pin the deterministic keyword floor.
type Rand interface {
	Float64() float64
}

// Classification keyword tables. Iteration order is fixed so equal
// confidences resolve the same way on every run.
var (
	stageKeywords = []struct {
		stage    entity.Stage
		keywords []string
	}{
		{entity.StageBefore, []string{"before", "initial", "start", "pre"}},
		{entity.StageProgress, []string{"progress", "check", "mid", "update", "month"}},
		{entity.StageAdjustment, []string{"adjustment", "adjust", "tighten", "wire", "post"}},
		{entity.StageCompletion, []string{"complete", "final", "end", "finish", "done", "after"}},
	}

	treatmentKeywords = []struct {
		treatment entity.TreatmentType
		keywords  []string
	}{
		{entity.TreatmentTypeBraces, []string{"braces", "bracket", "wire", "metal", "ceramic"}},
		{entity.TreatmentTypeInvisalign, []string{"invisalign", "clear", "aligner", "invisible"}},
		{entity.TreatmentTypeRetainers, []string{"retainer", "retain", "maintain", "hold"}},
	}

	// YYYY-MM-DD or MM-DD-YYYY, with - or _ separators
	fileDatePattern = regexp.MustCompile(`(\d{4}[-_]\d{2}[-_]\d{2})|(\d{2}[-_]\d{2}[-_]\d{4})`)
)

type SmartUploadUsecase interface {
	Analyze(ctx context.Context, req *dto.AnalyzeFilesRequest) (*dto.AnalysisResponse, error)
	GetSession(ctx context.Context) (*dto.AnalysisResponse, error)
	ApproveSuggestion(ctx context.Context, index int) (*dto.SuggestionResponse, error)
	EditSuggestion(ctx context.Context, index int, req *dto.EditSuggestionRequest) (*dto.SuggestionResponse, error)
	Commit(ctx context.Context) (*dto.CommitResponse, error)
	Reset(ctx context.Context) error
}

// smartUploadUsecase holds at most one analysis session at a time,
// matching the single upload dialog of the practice UI.
type smartUploadUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	photoRepo       repository.PhotoRepository
	activityService *service.ActivityService
	rng             Rand
	cfg             config.UploadConfig

	mu          sync.Mutex
	sessionID   string
	suggestions []entity.PhotoSuggestion
	skipped     int
	inProgress  bool
}

func NewSmartUploadUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	photoRepo repository.PhotoRepository,
	activityService *service.ActivityService,
	rng Rand,
	cfg config.UploadConfig,
) SmartUploadUsecase {
	return &smartUploadUsecase{
		log:             log,
		patientRepo:     patientRepo,
		photoRepo:       photoRepo,
		activityService: activityService,
		rng:             rng,
		cfg:             cfg,
	}
}

// Analyze runs the heuristic organization pass over a batch of files and
// opens a new session with the resulting suggestions. Only file metadata
// is examined; the "AI" is keyword matching against filenames.
func (u *smartUploadUsecase) Analyze(ctx context.Context, req *dto.AnalyzeFilesRequest) (*dto.AnalysisResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.inProgress {
		return nil, ErrUploadInProgress
	}

	var images []entity.FileInfo
	for _, f := range req.Files {
		if strings.HasPrefix(f.ContentType, "image/") && f.Size <= u.cfg.MaxFileSize {
			images = append(images, entity.FileInfo{
				Name:        f.Name,
				Size:        f.Size,
				ContentType: f.ContentType,
				ModifiedAt:  f.ModifiedAt,
			})
		}
	}
	if len(images) == 0 {
		return nil, ErrNoImageFiles
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patients for analysis: %+v", err)
		return nil, err
	}

	suggestions := make([]entity.PhotoSuggestion, 0, len(images))
	for i := range images {
		suggestions = append(suggestions, u.analyzeFile(ctx, &images[i], patients))
	}

	u.sessionID = uuid.NewString()
	u.suggestions = suggestions
	u.skipped = len(req.Files) - len(images)

	u.log.Infof("Smart upload analysis: session=%s, files=%d, skipped=%d", u.sessionID, len(images), u.skipped)
	return u.sessionResponseLocked(), nil
}

func (u *smartUploadUsecase) GetSession(ctx context.Context) (*dto.AnalysisResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.suggestions == nil {
		return nil, ErrNoAnalysisSession
	}
	return u.sessionResponseLocked(), nil
}

func (u *smartUploadUsecase) ApproveSuggestion(ctx context.Context, index int) (*dto.SuggestionResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.suggestions == nil {
		return nil, ErrNoAnalysisSession
	}
	if index < 0 || index >= len(u.suggestions) {
		return nil, ErrSuggestionNotFound
	}

	u.suggestions[index].Approved = true
	return converter.SuggestionToResponse(index, &u.suggestions[index]), nil
}

func (u *smartUploadUsecase) EditSuggestion(ctx context.Context, index int, req *dto.EditSuggestionRequest) (*dto.SuggestionResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.suggestions == nil {
		return nil, ErrNoAnalysisSession
	}
	if index < 0 || index >= len(u.suggestions) {
		return nil, ErrSuggestionNotFound
	}

	suggestion := &u.suggestions[index]

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(ctx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		suggestion.PatientID = patient.ID
		suggestion.PatientName = patient.Name
		suggestion.PatientConfidence = 1.0
	}
	if req.Title != nil {
		suggestion.Title = *req.Title
	}
	if req.Description != nil {
		suggestion.Description = *req.Description
	}
	if req.Stage != nil {
		suggestion.Stage = entity.Stage(*req.Stage)
		suggestion.StageConfidence = 1.0
	}
	if req.TreatmentType != nil {
		suggestion.TreatmentType = entity.TreatmentType(*req.TreatmentType)
		suggestion.TreatmentConfidence = 1.0
	}
	if req.Tags != nil {
		suggestion.Tags = req.Tags
	}

	return converter.SuggestionToResponse(index, suggestion), nil
}

// Commit turns every eligible suggestion into a treatment photo record.
// Eligible means human-approved or overall confidence at or above the
// auto-approve threshold. At most one commit can be in flight.
func (u *smartUploadUsecase) Commit(ctx context.Context) (*dto.CommitResponse, error) {
	u.mu.Lock()
	if u.inProgress {
		u.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	if u.suggestions == nil {
		u.mu.Unlock()
		return nil, ErrNoAnalysisSession
	}

	var eligible []entity.PhotoSuggestion
	for i := range u.suggestions {
		if u.suggestions[i].Approved || u.suggestions[i].OverallConfidence >= u.cfg.AutoApproveThreshold {
			eligible = append(eligible, u.suggestions[i])
		}
	}
	if len(eligible) == 0 {
		u.mu.Unlock()
		return nil, ErrNoEligibleSuggestions
	}

	u.inProgress = true
	sessionID := u.sessionID
	u.mu.Unlock()

	now := time.Now()
	photos := make([]entity.TreatmentPhoto, 0, len(eligible))
	for i := range eligible {
		s := &eligible[i]

		patientName := s.PatientName
		if patientName == "" {
			patientName = "Unknown Patient"
		}

		photo := entity.TreatmentPhoto{
			PatientID:     s.PatientID,
			PatientName:   patientName,
			TreatmentType: s.TreatmentType,
			Stage:         s.Stage,
			Date:          s.ExtractedDate,
			Title:         s.Title,
			Description:   s.Description,
			ImageURL:      fmt.Sprintf("/uploads/%s/%s", sessionID, s.FileName),
			Tags:          s.Tags,
			Notes:         fmt.Sprintf("AI-organized photo (%d%% confidence)", int(math.Round(s.OverallConfidence*100))),
			UploadDate:    &now,
			FileName:      s.FileName,
			FileSize:      s.FileSize,
			FileType:      s.FileType,
			AIGenerated:   true,
			AIConfidence:  s.OverallConfidence,
		}

		if err := u.photoRepo.Create(ctx, &photo); err != nil {
			u.log.Errorf("Failed to store photo %s: %+v", s.FileName, err)
			u.mu.Lock()
			u.inProgress = false
			u.mu.Unlock()
			return nil, err
		}
		photos = append(photos, photo)
	}

	u.activityService.Record(ctx, entity.ActivityPhotosOrganized,
		fmt.Sprintf("%d photos organized by smart upload", len(photos)), "")

	// Session is spent once committed
	u.mu.Lock()
	u.inProgress = false
	u.sessionID = ""
	u.suggestions = nil
	u.skipped = 0
	u.mu.Unlock()

	u.log.Infof("Smart upload committed: session=%s, uploaded=%d", sessionID, len(photos))
	return &dto.CommitResponse{
		Uploaded: len(photos),
		Photos:   converter.PhotosToResponses(photos),
	}, nil
}

func (u *smartUploadUsecase) Reset(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.inProgress {
		return ErrUploadInProgress
	}

	u.sessionID = ""
	u.suggestions = nil
	u.skipped = 0
	return nil
}

func (u *smartUploadUsecase) sessionResponseLocked() *dto.AnalysisResponse {
	return &dto.AnalysisResponse{
		SessionID:   u.sessionID,
		Suggestions: converter.SuggestionsToResponses(u.suggestions),
		Skipped:     u.skipped,
		Total:       len(u.suggestions),
	}
}

func (u *smartUploadUsecase) analyzeFile(ctx context.Context, file *entity.FileInfo, patients []entity.Patient) entity.PhotoSuggestion {
	fileName := strings.ToLower(file.Name)

	suggestion := entity.PhotoSuggestion{
		FileName:      file.Name,
		FileSize:      file.Size,
		FileType:      file.ContentType,
		ExtractedDate: extractDate(fileName, file.ModifiedAt),
	}

	u.detectPatient(&suggestion, fileName, patients)
	u.classifyStage(&suggestion, fileName)
	u.classifyTreatment(ctx, &suggestion, fileName)
	buildSuggestionText(&suggestion)

	return suggestion
}

// extractDate pulls a date out of the filename, falling back to the
// file's own modification timestamp
func extractDate(fileName string, modifiedAt time.Time) string {
	if match := fileDatePattern.FindString(fileName); match != "" {
		normalized := strings.ReplaceAll(match, "_", "-")
		if date, err := time.Parse("2006-01-02", normalized); err == nil {
			return date.Format("2006-01-02")
		}
		if date, err := time.Parse("01-02-2006", normalized); err == nil {
			return date.Format("2006-01-02")
		}
	}
	if modifiedAt.IsZero() {
		modifiedAt = time.Now()
	}
	return modifiedAt.Format("2006-01-02")
}

// detectPatient matches the space-separated parts of each patient's name
// against the filename. Confidence is the fraction of parts found; the
// best patient above 0.5 wins. With no qualifying match, an arbitrary
// patient is suggested at low confidence so the field is never left empty
// while patients exist.
func (u *smartUploadUsecase) detectPatient(s *entity.PhotoSuggestion, fileName string, patients []entity.Patient) {
	var detected *entity.Patient
	maxConfidence := 0.0

	for i := range patients {
		parts := strings.Fields(strings.ToLower(patients[i].Name))
		if len(parts) == 0 {
			continue
		}

		matches := 0
		for _, part := range parts {
			if strings.Contains(fileName, part) {
				matches++
			}
		}

		confidence := float64(matches) / float64(len(parts))
		if confidence > maxConfidence && confidence > 0.5 {
			maxConfidence = confidence
			detected = &patients[i]
		}
	}

	if detected == nil && len(patients) > 0 {
		detected = &patients[int(u.rng.Float64()*float64(len(patients)))%len(patients)]
		maxConfidence = 0.3
	}

	if detected != nil {
		s.PatientID = detected.ID
		s.PatientName = detected.Name
	}
	s.PatientConfidence = maxConfidence
}

// classifyStage scores each stage's keyword list against the filename with
// a jitter term in [0,0.3). The default is progress at 0.4: with zero
// keyword hits and zero jitter, that floor is exactly what comes out.
func (u *smartUploadUsecase) classifyStage(s *entity.PhotoSuggestion, fileName string) {
	detected := entity.StageProgress
	maxConfidence := 0.4

	for _, entry := range stageKeywords {
		matches := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(fileName, keyword) {
				matches++
			}
		}

		confidence := float64(matches)/float64(len(entry.keywords)) + u.rng.Float64()*0.3
		if confidence > maxConfidence {
			maxConfidence = confidence
			detected = entry.stage
		}
	}

	s.Stage = detected
	s.StageConfidence = math.Min(maxConfidence, 0.95)
}

// classifyTreatment is keyword-driven like stage classification, with one
// bias: a detected patient's known treatment overrides the keyword result
// 70% of the time, at 0.8 confidence.
func (u *smartUploadUsecase) classifyTreatment(ctx context.Context, s *entity.PhotoSuggestion, fileName string) {
	detected := entity.TreatmentTypeBraces
	maxConfidence := 0.5

	for _, entry := range treatmentKeywords {
		matches := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(fileName, keyword) {
				matches++
			}
		}

		confidence := float64(matches)/float64(len(entry.keywords)) + u.rng.Float64()*0.4
		if confidence > maxConfidence {
			maxConfidence = confidence
			detected = entry.treatment
		}
	}

	if s.PatientName != "" {
		if known := treatmentTypeFor(u.patientTreatment(ctx, s.PatientID)); known != "" {
			if u.rng.Float64() > 0.3 {
				detected = known
				maxConfidence = 0.8
			}
		}
	}

	s.TreatmentType = detected
	s.TreatmentConfidence = math.Min(maxConfidence, 0.9)
}

func (u *smartUploadUsecase) patientTreatment(ctx context.Context, patientID int64) string {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil || patient == nil {
		return ""
	}
	return patient.Treatment
}

// treatmentTypeFor maps a patient-record treatment to the photo
// vocabulary; "None" and unknown values yield no override
func treatmentTypeFor(treatment string) entity.TreatmentType {
	switch treatment {
	case entity.TreatmentBraces:
		return entity.TreatmentTypeBraces
	case entity.TreatmentInvisalign:
		return entity.TreatmentTypeInvisalign
	case entity.TreatmentRetainers:
		return entity.TreatmentTypeRetainers
	}
	return ""
}

// buildSuggestionText fills in title, description, tags and the overall
// confidence (mean of the three facet confidences)
func buildSuggestionText(s *entity.PhotoSuggestion) {
	patientName := s.PatientName
	if patientName == "" {
		patientName = "Patient"
	}

	stageLabel := entity.StageLabel(s.Stage)
	s.Title = fmt.Sprintf("%s - %s", stageLabel, patientName)
	s.Description = fmt.Sprintf("%s %s photo", entity.TreatmentLabel(s.TreatmentType), strings.ToLower(stageLabel))

	patientTag := "unknown-patient"
	if s.PatientName != "" {
		patientTag = strings.ReplaceAll(strings.ToLower(s.PatientName), " ", "-")
	}
	s.Tags = []string{string(s.TreatmentType), string(s.Stage), patientTag}

	patientConfidence := s.PatientConfidence
	if patientConfidence == 0 {
		patientConfidence = 0.5
	}
	s.OverallConfidence = (patientConfidence + s.StageConfidence + s.TreatmentConfidence) / 3
}
