package handler

import (
	"net/http"

	"go-ortho-practice/internal/usecase"
	"go-ortho-practice/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.searchUsecase.Search(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrQueryTooShort:
			response.Error(w, http.StatusBadRequest, "Search query must be at least 2 characters", nil)
		default:
			response.InternalServerError(w, "Search failed")
		}
		return
	}

	response.Success(w, http.StatusOK, "", results)
}
