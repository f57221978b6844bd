package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codepair-io/codepair/internal/api"
	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/email"
	"github.com/codepair-io/codepair/internal/llm"
	"github.com/codepair-io/codepair/internal/service"
	"github.com/codepair-io/codepair/internal/service/auth_service"
	"github.com/codepair-io/codepair/internal/service/interview_service"
	"github.com/codepair-io/codepair/internal/service/problem_service"
	"github.com/codepair-io/codepair/internal/service/user_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabase() (*pgxpool.Pool, *database.Queries) {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	// one pool for the whole process, reused by every request
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return pool, database.New(pool)
}

func initUserService(db *database.Queries) *user_service.UserService {
	log.Info("initializing user service")
	us := user_service.UserService{
		DB: db,
	}
	err := us.InitializeUserService()
	if err != nil {
		panic(err)
	}
	return &us
}

func initAuthService(us *user_service.UserService) *auth_service.AuthService {
	log.Info("initializing auth service")
	return &auth_service.AuthService{
		UserConfig: us,
	}
}

func initProblemService(
	db *database.Queries,
	us *user_service.UserService,
) *problem_service.ProblemService {
	log.Info("initializing problem service")
	provider, err := llm.NewOpenAIProviderFromEnv()
	if err != nil {
		// generation stays unavailable, every other endpoint still works
		log.Warnf("completion provider not configured: %v", err)
		return &problem_service.ProblemService{
			DB:                db,
			UserServiceConfig: us,
		}
	}
	log.Infof("completion provider ready with model %s", provider.ModelID())
	return &problem_service.ProblemService{
		DB:                db,
		UserServiceConfig: us,
		Provider:          provider,
	}
}

func initInterviewService(
	db *database.Queries,
	us *user_service.UserService,
) *interview_service.InterviewService {
	log.Info("initializing interview service")
	return &interview_service.InterviewService{
		DB:                db,
		UserServiceConfig: us,
	}
}

func initApi(db *database.Queries) *api.Api {
	log.Info("initializing api config")
	us := initUserService(db)
	log.Info("user service created")
	as := initAuthService(us)
	log.Info("auth service created")
	ps := initProblemService(db, us)
	log.Info("problem service created")
	is := initInterviewService(db, us)
	log.Info("interview service created")
	a := api.Api{
		AuthServiceConfig:      as,
		UserServiceConfig:      us,
		ProblemServiceConfig:   ps,
		InterviewServiceConfig: is,
	}
	return &a
}

func setup() *pgxpool.Pool {
	godotenv.Load()
	service.InitializeServices()
	pool, db := initDatabase()
	apiConfig = initApi(db)
	email.StartEmailWorkers(1)
	return pool
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	pool := setup()
	defer pool.Close()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount v1 router
	v1router := NewV1Router()
	router.Mount("/v1", v1router)
	log.Info("v1 router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
