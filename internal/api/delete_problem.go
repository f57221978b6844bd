package api

import (
	"net/http"

	"github.com/google/uuid"
)

func (a *Api) HandlerDeleteProblem(w http.ResponseWriter, r *http.Request) {
	problemIdStr := r.URL.Query().Get("problem_id")
	if problemIdStr == "" {
		http.Error(w, "problem_id query parameter is required", http.StatusBadRequest)
		return
	}

	problemId, err := uuid.Parse(problemIdStr)
	if err != nil {
		http.Error(w, "invalid problem id, problem id must be a uuid", http.StatusBadRequest)
		return
	}

	if err := a.ProblemServiceConfig.DeleteProblem(r.Context(), problemId); err != nil {
		handlerError(err, w)
		return
	}

	respondWithJson(w, http.StatusOK, []byte(`{"success": true}`))
}
