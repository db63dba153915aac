package handlers

import (
	"net/http"

	"velocilector/internal/models"
	"velocilector/internal/repository"
	"velocilector/internal/service"
)

// ResultsHandler records completed exercises and lists them for the
// admin analytics views.
type ResultsHandler struct {
	resultService *service.ResultService
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultService *service.ResultService) *ResultsHandler {
	return &ResultsHandler{resultService: resultService}
}

// SubmitQuiz records a quiz run; the reader category is derived
// server-side from the submitted metrics.
func (h *ResultsHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var result models.QuizResult
	if err := decodeJSON(r, &result); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resultService.SaveQuizResult(&result); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"id":              result.ID,
		"categoriaLector": result.CategoriaLector,
	})
}

// SubmitTraining records a generic training result
func (h *ResultsHandler) SubmitTraining(w http.ResponseWriter, r *http.Request) {
	var result models.TrainingResult
	if err := decodeJSON(r, &result); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resultService.SaveTrainingResult(&result); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": result.ID})
}

// SubmitCerebral records a cerebral exercise result
func (h *ResultsHandler) SubmitCerebral(w http.ResponseWriter, r *http.Request) {
	var result models.CerebralResult
	if err := decodeJSON(r, &result); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resultService.SaveCerebralResult(&result); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": result.ID})
}

// ListTraining lists training results filtered by query params (public,
// used by the exercise pages to show prior attempts)
func (h *ResultsHandler) ListTraining(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListTrainingResults(filterFromQuery(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if results == nil {
		results = []models.TrainingResult{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// ListQuiz lists quiz results for the admin analytics view
func (h *ResultsHandler) ListQuiz(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListQuizResults(filterFromQuery(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// ListCerebral lists cerebral results for the admin analytics view
func (h *ResultsHandler) ListCerebral(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.ListCerebralResults(filterFromQuery(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if results == nil {
		results = []models.CerebralResult{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// filterFromQuery builds a result filter from sessionId/categoria/limit
// query parameters
func filterFromQuery(r *http.Request) repository.ResultFilter {
	return repository.ResultFilter{
		SessionID: r.URL.Query().Get("sessionId"),
		Categoria: models.Category(r.URL.Query().Get("categoria")),
		Limit:     queryInt(r, "limit", 0),
	}
}
