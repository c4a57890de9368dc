package handler

import (
	"net/http"
	"strconv"

	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"

	"github.com/gorilla/mux"
)

type PhotoHandler struct {
	photoUsecase usecase.PhotoUsecase
}

func NewPhotoHandler(photoUsecase usecase.PhotoUsecase) *PhotoHandler {
	return &PhotoHandler{
		photoUsecase: photoUsecase,
	}
}

// GetPhotos lists gallery photos. Query parameters: treatment (tab
// selection or "all"), patient_id, stage, sort.
func (h *PhotoHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entity.PhotoFilter{
		TreatmentType: query.Get("treatment"),
		Stage:         query.Get("stage"),
	}
	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient_id", nil)
			return
		}
		filter.PatientID = patientID
	}

	sortBy := entity.PhotoSort(query.Get("sort"))
	if sortBy == "" {
		sortBy = entity.PhotoSortNewest
	}

	photos, err := h.photoUsecase.GetPhotos(r.Context(), filter, sortBy)
	if err != nil {
		response.InternalServerError(w, "Failed to list photos")
		return
	}

	response.Success(w, http.StatusOK, "", photos)
}

func (h *PhotoHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid photo id", nil)
		return
	}

	photo, err := h.photoUsecase.GetPhoto(r.Context(), photoID)
	if err != nil {
		switch err {
		case usecase.ErrPhotoNotFound:
			response.NotFound(w, "Photo not found")
		default:
			response.InternalServerError(w, "Failed to get photo")
		}
		return
	}

	response.Success(w, http.StatusOK, "", photo)
}

func (h *PhotoHandler) GetPhotoCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.photoUsecase.GetCounts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to count photos")
		return
	}

	response.Success(w, http.StatusOK, "", counts)
}
