package api

import (
	"fmt"
	"net/http"

	"github.com/codepair-io/codepair/internal/service/problem_service"
)

func (a *Api) HandlerGenerateProblem(w http.ResponseWriter, r *http.Request) {
	var request problem_service.GenerateProblemRequest

	// decode from body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// run the generation pipeline
	problem, err := a.ProblemServiceConfig.GenerateProblem(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, problem)
}
