package main

import (
	"github.com/codepair-io/codepair/middleware"
	"github.com/go-chi/chi/v5"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", apiConfig.HandlerReadiness)

	// auth layer
	v1.Post("/auth/session", apiConfig.HandlerCreateSession)
	v1.Post("/auth/logout", apiConfig.HandlerLogout)
	v1.Get("/me", middleware.JWTMiddleware(apiConfig.HandlerGetMe))
	v1.Put("/me/role", middleware.JWTMiddleware(apiConfig.HandlerUpdateMyRole))

	// problems layer
	// search
	v1.Get("/problems", middleware.JWTMiddleware(apiConfig.HandlerGetProblems))
	// generate via the completion endpoint
	v1.Post("/problems/generate", middleware.JWTMiddleware(apiConfig.HandlerGenerateProblem))
	// create custom
	v1.Post("/problems", middleware.JWTMiddleware(apiConfig.HandlerAddProblem))
	// delete
	v1.Delete("/problems", middleware.JWTMiddleware(apiConfig.HandlerDeleteProblem))

	// interviews layer
	v1.Get("/interviews", middleware.JWTMiddleware(apiConfig.HandlerGetInterviews))
	v1.Post("/interviews", middleware.JWTMiddleware(apiConfig.HandlerCreateInterview))
	v1.Put("/interviews/status", middleware.JWTMiddleware(apiConfig.HandlerUpdateInterviewStatus))
	v1.Get("/interviews/problems", middleware.JWTMiddleware(apiConfig.HandlerGetInterviewProblems))

	// interview feedback
	v1.Post("/interviews/comments", middleware.JWTMiddleware(apiConfig.HandlerAddComment))
	v1.Get("/interviews/comments", middleware.JWTMiddleware(apiConfig.HandlerGetComments))

	return v1
}
