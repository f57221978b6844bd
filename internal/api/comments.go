package api

import (
	"fmt"
	"net/http"

	"github.com/codepair-io/codepair/internal/service/interview_service"
	"github.com/google/uuid"
)

func (a *Api) HandlerAddComment(w http.ResponseWriter, r *http.Request) {
	var request interview_service.AddCommentRequest

	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	comment, err := a.InterviewServiceConfig.AddComment(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, comment)
}

func (a *Api) HandlerGetComments(w http.ResponseWriter, r *http.Request) {
	interviewIdStr := r.URL.Query().Get("interview_id")
	interviewId, err := uuid.Parse(interviewIdStr)
	if err != nil {
		http.Error(w, "invalid interview id, interview id must be a uuid", http.StatusBadRequest)
		return
	}

	comments, err := a.InterviewServiceConfig.ListComments(r.Context(), interviewId)
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, comments)
}
