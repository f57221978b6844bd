package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/codepair-io/codepair/internal/service/auth_service"
	"github.com/codepair-io/codepair/middleware"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerCreateSession(w http.ResponseWriter, r *http.Request) {
	// extract the identity assertion
	var request auth_service.SessionRequest

	// decode from the json body
	err := decodeJsonBody(r.Body, &request)
	if err != nil {
		msg := fmt.Sprintf("invalid request payload, %s", err.Error())
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	// verify the assertion and gen a jwt token
	sessionResponse, jwtToken, tokenExpiry, err := a.AuthServiceConfig.CreateSession(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	// set jwt session cookie
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    jwtToken,
		Expires:  tokenExpiry,
		Path:     "/",                  // Important: Makes the cookie available across the entire site
		HttpOnly: true,                 // Crucial: Prevents JavaScript access
		Secure:   true,                 // Crucial: Only send over HTTPS
		SameSite: http.SameSiteLaxMode, // Recommended: Protects against CSRF
	}
	http.SetCookie(w, cookie)

	log.WithFields(log.Fields{
		"subject": sessionResponse.User.Subject,
		"role":    sessionResponse.User.Role,
	}).Info("logged in")

	marshalAndRespond(w, http.StatusOK, sessionResponse)
}

func (a *Api) HandlerLogout(w http.ResponseWriter, r *http.Request) {
	expiredCookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName, // must match login cookie name
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0), // expire immediately
		MaxAge:   -1,              // remove cookie right now
		HttpOnly: true,
		Secure:   true, // same as login
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, expiredCookie)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "logged out successfully"}`))
}
