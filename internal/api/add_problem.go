package api

import (
	"fmt"
	"net/http"

	"github.com/codepair-io/codepair/internal/service/problem_service"
)

func (a *Api) HandlerAddProblem(w http.ResponseWriter, r *http.Request) {
	var request problem_service.AddProblemRequest

	// decode from body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// create the problem
	problem, err := a.ProblemServiceConfig.AddProblem(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, problem)
}
