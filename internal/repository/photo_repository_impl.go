package repository

import (
	"context"
	"sync"

	"go-ortho-practice/internal/domain/entity"
	domainRepo "go-ortho-practice/internal/domain/repository"
)

type photoRepository struct {
	mu     sync.RWMutex
	ids    idAllocator
	photos []entity.TreatmentPhoto
}

func NewPhotoRepository() domainRepo.PhotoRepository {
	return &photoRepository{}
}

func (r *photoRepository) Create(ctx context.Context, photo *entity.TreatmentPhoto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if photo.ID == 0 {
		photo.ID = r.ids.next()
	} else {
		r.ids.track(photo.ID)
	}
	r.photos = append(r.photos, *photo)
	return nil
}

func (r *photoRepository) FindByID(ctx context.Context, id int64) (*entity.TreatmentPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.photos {
		if r.photos[i].ID == id {
			photo := r.photos[i]
			return &photo, nil
		}
	}
	return nil, nil
}

// FindAll returns photos in insertion order
func (r *photoRepository) FindAll(ctx context.Context) ([]entity.TreatmentPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photos := make([]entity.TreatmentPhoto, len(r.photos))
	copy(photos, r.photos)
	return photos, nil
}
