package api

import (
	"fmt"
	"net/http"
)

func (a *Api) HandlerGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := a.UserServiceConfig.GetMe(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, user)
}

func (a *Api) HandlerUpdateMyRole(w http.ResponseWriter, r *http.Request) {
	type Params struct {
		Role string `json:"role"`
	}

	var params Params
	err := decodeJsonBody(r.Body, &params)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	user, err := a.UserServiceConfig.UpdateMyRole(r.Context(), params.Role)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, user)
}
