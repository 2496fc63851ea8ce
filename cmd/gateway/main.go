package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	api "github.com/studyaide/studyaide-backend/internal/api/http"
	"github.com/studyaide/studyaide-backend/internal/auth"
	authmw "github.com/studyaide/studyaide-backend/internal/auth/middleware"
	"github.com/studyaide/studyaide-backend/internal/config"
	"github.com/studyaide/studyaide-backend/internal/db"
	"github.com/studyaide/studyaide-backend/internal/exam"
	"github.com/studyaide/studyaide-backend/internal/genai"
	"github.com/studyaide/studyaide-backend/internal/guest"
	"github.com/studyaide/studyaide-backend/internal/rbac"
	"github.com/studyaide/studyaide-backend/internal/usage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	store := exam.NewSQLStore(dbh)
	usageRepo := usage.NewRepo(dbh)
	limiter := guest.NewMemoryLimiter()
	generator := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, log)
	svc := exam.NewService(store, generator, limiter, usageRepo, log, cfg.GuestExamLimit)

	authSvc := authmw.NewAuthService(cfg.AuthHMACSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg.EnableGuestAuth))

	// Generation and practice grading: token optional, anonymous callers
	// fall under the guest limiter.
	r.Group(func(gr chi.Router) {
		gr.Use(authmw.OptionalJWTMiddleware(authSvc))
		gr.Post("/exams", api.GenerateExamHandler(svc))
		gr.Post("/exams/grade", api.GradeExamHandler(svc))

		// The share token in the URL is the access grant for shared exams.
		gr.Get("/shared/{shareID}", api.GetSharedExamHandler(svc))
		gr.Post("/shared/{shareID}/submissions", api.SubmitSharedExamHandler(svc))
		gr.Get("/shared/{shareID}/submissions/{submissionID}/comparison", api.CompareSubmissionHandler(svc))
	})

	// Account routes require a real login.
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DBDriver))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
