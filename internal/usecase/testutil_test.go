package usecase

import (
	"io"

	"go-ortho-practice/internal/repository"
	"go-ortho-practice/internal/service"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestActivityService(log *logrus.Logger) *service.ActivityService {
	return service.NewActivityService(log, repository.NewActivityRepository(50))
}

// stubRand replays a fixed sequence of values, repeating the last one
// once the sequence is exhausted.
type stubRand struct {
	values []float64
	i      int
}

func (r *stubRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	if r.i >= len(r.values) {
		return r.values[len(r.values)-1]
	}
	v := r.values[r.i]
	r.i++
	return v
}
