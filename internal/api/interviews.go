package api

import (
	"fmt"
	"net/http"

	"github.com/codepair-io/codepair/internal/service/interview_service"
	"github.com/google/uuid"
)

func (a *Api) HandlerCreateInterview(w http.ResponseWriter, r *http.Request) {
	var request interview_service.CreateInterviewRequest

	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	interview, err := a.InterviewServiceConfig.CreateInterview(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, interview)
}

func (a *Api) HandlerGetInterviews(w http.ResponseWriter, r *http.Request) {
	// lookup by signaling call id
	streamCallId := r.URL.Query().Get("stream_call_id")
	if streamCallId != "" {
		interview, err := a.InterviewServiceConfig.GetInterviewByStreamCallId(
			r.Context(),
			streamCallId,
		)
		if err != nil {
			handlerError(err, w)
			return
		}
		marshalAndRespond(w, http.StatusOK, interview)
		return
	}

	// interviews where the caller is the candidate
	if r.URL.Query().Get("mine") == "true" {
		interviews, err := a.InterviewServiceConfig.ListMyInterviews(r.Context())
		if err != nil {
			handlerError(err, w)
			return
		}
		marshalAndRespond(w, http.StatusOK, interviews)
		return
	}

	interviews, err := a.InterviewServiceConfig.ListInterviews(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, interviews)
}

func (a *Api) HandlerUpdateInterviewStatus(w http.ResponseWriter, r *http.Request) {
	var request interview_service.UpdateStatusRequest

	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	interview, err := a.InterviewServiceConfig.UpdateStatus(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, interview)
}

func (a *Api) HandlerGetInterviewProblems(w http.ResponseWriter, r *http.Request) {
	interviewIdStr := r.URL.Query().Get("interview_id")
	interviewId, err := uuid.Parse(interviewIdStr)
	if err != nil {
		http.Error(w, "invalid interview id, interview id must be a uuid", http.StatusBadRequest)
		return
	}

	problems, err := a.InterviewServiceConfig.ListInterviewProblems(r.Context(), interviewId)
	if err != nil {
		handlerError(err, w)
		return
	}
	marshalAndRespond(w, http.StatusOK, problems)
}
