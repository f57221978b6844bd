package api

import (
	"net/http"

	"github.com/google/uuid"
)

func (a *Api) HandlerGetProblems(w http.ResponseWriter, r *http.Request) {
	// single problem lookup
	problemIdStr := r.URL.Query().Get("problem_id")
	if problemIdStr != "" {
		problemId, err := uuid.Parse(problemIdStr)
		if err != nil {
			http.Error(w, "invalid problem id, problem id must be a uuid", http.StatusBadRequest)
			return
		}

		problem, err := a.ProblemServiceConfig.GetProblemById(r.Context(), problemId)
		if err != nil {
			handlerError(err, w)
			return
		}
		marshalAndRespond(w, http.StatusOK, problem)
		return
	}

	// caller's own problems
	if r.URL.Query().Get("mine") == "true" {
		problems, err := a.ProblemServiceConfig.ListMyProblems(r.Context())
		if err != nil {
			handlerError(err, w)
			return
		}
		marshalAndRespond(w, http.StatusOK, problems)
		return
	}

	// filter by difficulty
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty != "" {
		problems, err := a.ProblemServiceConfig.ListProblemsByDifficulty(r.Context(), difficulty)
		if err != nil {
			handlerError(err, w)
			return
		}
		marshalAndRespond(w, http.StatusOK, problems)
		return
	}

	// everything, newest first
	problems, err := a.ProblemServiceConfig.ListProblems(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, problems)
}
