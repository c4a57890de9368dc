package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go-ortho-practice/internal/converter"
	"go-ortho-practice/internal/delivery/dto"
	"go-ortho-practice/internal/domain/entity"
	"go-ortho-practice/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoUsecase interface {
	GetPhotos(ctx context.Context, filter entity.PhotoFilter, sortBy entity.PhotoSort) (*dto.PhotoListResponse, error)
	GetPhoto(ctx context.Context, photoID int64) (*dto.PhotoResponse, error)
	GetCounts(ctx context.Context) (*dto.PhotoCountsResponse, error)
}

type photoUsecase struct {
	log       *logrus.Logger
	photoRepo repository.PhotoRepository
}

func NewPhotoUsecase(log *logrus.Logger, photoRepo repository.PhotoRepository) PhotoUsecase {
	return &photoUsecase{
		log:       log,
		photoRepo: photoRepo,
	}
}

// GetPhotos applies the conjunctive facet filter, then sorts. An empty
// result is a valid outcome, not an error.
func (u *photoUsecase) GetPhotos(ctx context.Context, filter entity.PhotoFilter, sortBy entity.PhotoSort) (*dto.PhotoListResponse, error) {
	photos, err := u.photoRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list photos: %+v", err)
		return nil, err
	}

	filtered := make([]entity.TreatmentPhoto, 0, len(photos))
	for i := range photos {
		if filter.Matches(&photos[i]) {
			filtered = append(filtered, photos[i])
		}
	}

	sortPhotos(filtered, sortBy)

	return &dto.PhotoListResponse{
		Photos: converter.PhotosToResponses(filtered),
		Total:  len(filtered),
	}, nil
}

func (u *photoUsecase) GetPhoto(ctx context.Context, photoID int64) (*dto.PhotoResponse, error) {
	photo, err := u.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		u.log.Warnf("Failed to find photo %d: %+v", photoID, err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	return converter.PhotoToResponse(photo), nil
}

func (u *photoUsecase) GetCounts(ctx context.Context) (*dto.PhotoCountsResponse, error) {
	photos, err := u.photoRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to count photos: %+v", err)
		return nil, err
	}

	counts := &dto.PhotoCountsResponse{All: len(photos)}
	for i := range photos {
		switch photos[i].TreatmentType {
		case entity.TreatmentTypeBraces:
			counts.Braces++
		case entity.TreatmentTypeInvisalign:
			counts.Invisalign++
		case entity.TreatmentTypeRetainers:
			counts.Retainers++
		}
	}
	return counts, nil
}

// sortPhotos orders the filtered set in place. Dates are YYYY-MM-DD, so
// lexicographic comparison is chronological.
func sortPhotos(photos []entity.TreatmentPhoto, sortBy entity.PhotoSort) {
	switch sortBy {
	case entity.PhotoSortOldest:
		sort.SliceStable(photos, func(i, j int) bool {
			return photos[i].Date < photos[j].Date
		})
	case entity.PhotoSortPatient:
		sort.SliceStable(photos, func(i, j int) bool {
			return strings.Compare(photos[i].PatientName, photos[j].PatientName) < 0
		})
	case entity.PhotoSortStage:
		sort.SliceStable(photos, func(i, j int) bool {
			return entity.StageOrder[photos[i].Stage] < entity.StageOrder[photos[j].Stage]
		})
	default: // newest first
		sort.SliceStable(photos, func(i, j int) bool {
			return photos[i].Date > photos[j].Date
		})
	}
}
