package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"
	"go-ortho-practice/pkg/validator"

	"github.com/gorilla/mux"
)

type SmartUploadHandler struct {
	uploadUsecase usecase.SmartUploadUsecase
	validator     *validator.CustomValidator
}

func NewSmartUploadHandler(uploadUsecase usecase.SmartUploadUsecase, validator *validator.CustomValidator) *SmartUploadHandler {
	return &SmartUploadHandler{
		uploadUsecase: uploadUsecase,
		validator:     validator,
	}
}

func (h *SmartUploadHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeFilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	analysis, err := h.uploadUsecase.Analyze(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNoImageFiles:
			response.Error(w, http.StatusBadRequest, "No valid image files selected", nil)
		case usecase.ErrUploadInProgress:
			response.Conflict(w, "An upload is already in progress")
		default:
			response.InternalServerError(w, "Analysis failed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Analysis complete", analysis)
}

func (h *SmartUploadHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.uploadUsecase.GetSession(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNoAnalysisSession:
			response.NotFound(w, "No analysis session is active")
		default:
			response.InternalServerError(w, "Failed to load session")
		}
		return
	}

	response.Success(w, http.StatusOK, "", analysis)
}

func (h *SmartUploadHandler) ApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid suggestion index", nil)
		return
	}

	suggestion, err := h.uploadUsecase.ApproveSuggestion(r.Context(), index)
	if err != nil {
		h.writeSuggestionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestion approved", suggestion)
}

func (h *SmartUploadHandler) EditSuggestion(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid suggestion index", nil)
		return
	}

	var req dto.EditSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestion, err := h.uploadUsecase.EditSuggestion(r.Context(), index, &req)
	if err != nil {
		h.writeSuggestionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestion updated", suggestion)
}

func (h *SmartUploadHandler) Commit(w http.ResponseWriter, r *http.Request) {
	result, err := h.uploadUsecase.Commit(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNoAnalysisSession:
			response.NotFound(w, "No analysis session is active")
		case usecase.ErrUploadInProgress:
			response.Conflict(w, "An upload is already in progress")
		case usecase.ErrNoEligibleSuggestions:
			response.Error(w, http.StatusBadRequest, "No approved suggestions to upload", nil)
		default:
			response.InternalServerError(w, "Upload failed")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Photos uploaded successfully", result)
}

func (h *SmartUploadHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.uploadUsecase.Reset(r.Context()); err != nil {
		switch err {
		case usecase.ErrUploadInProgress:
			response.Conflict(w, "An upload is already in progress")
		default:
			response.InternalServerError(w, "Failed to reset session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session reset", nil)
}

func (h *SmartUploadHandler) writeSuggestionError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrNoAnalysisSession:
		response.NotFound(w, "No analysis session is active")
	case usecase.ErrSuggestionNotFound:
		response.NotFound(w, "Suggestion not found")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	default:
		response.InternalServerError(w, "Failed to update suggestion")
	}
}
