package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/resumehub/resumehub-backend/api/routes"
	"github.com/resumehub/resumehub-backend/internal/auth"
	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/internal/resumes"
	"github.com/resumehub/resumehub-backend/internal/sessions"
	"github.com/resumehub/resumehub-backend/internal/users"
	"github.com/resumehub/resumehub-backend/pkg/config"
	"github.com/resumehub/resumehub-backend/pkg/db"
	"github.com/resumehub/resumehub-backend/pkg/logger"
	"github.com/resumehub/resumehub-backend/pkg/metrics"
	"github.com/resumehub/resumehub-backend/pkg/migrate"
	"github.com/resumehub/resumehub-backend/pkg/oauth"
	"github.com/resumehub/resumehub-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	var googleProvider *oauth.GoogleProvider
	if cfg.OAuth.Enabled() {
		googleProvider, err = oauth.NewGoogle(cfg.OAuth)
		if err != nil {
			logg.Error(context.Background(), "failed to configure google oauth", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "google oauth disabled, credentials not configured")
	}

	userRepo := users.NewRepository(dbClient.DB())
	sessionRepo := sessions.NewRepository(dbClient.DB())

	authParams := auth.ServiceParams{
		UserRepo:       userRepo,
		SessionRepo:    sessionRepo,
		TxRunner:       dbClient,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	}
	if googleProvider != nil {
		authParams.GoogleProvider = googleProvider
	}
	authService, err := auth.NewService(authParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	svcs := routes.Services{
		Auth:           authService,
		PersonalInfo:   resources.NewPersonalInfoService(dbClient, dbClient.DB()),
		Summaries:      resources.NewSummariesService(dbClient.DB()),
		WorkExp:        resources.NewWorkExperiencesService(dbClient.DB()),
		Projects:       resources.NewProjectsService(dbClient.DB()),
		Skills:         resources.NewSkillsService(dbClient.DB()),
		Education:      resources.NewEducationService(dbClient.DB()),
		Certifications: resources.NewCertificationsService(dbClient.DB()),
		Resumes:        resumes.NewService(dbClient, dbClient.DB()),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, dbClient, redisClient, googleProvider,
			sessionRepo, httpMetrics, registry, svcs,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
