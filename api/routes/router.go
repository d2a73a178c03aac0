package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resumehub/resumehub-backend/api/controllers"
	"github.com/resumehub/resumehub-backend/api/middleware"
	"github.com/resumehub/resumehub-backend/internal/auth"
	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/internal/resumes"
	pkgAuth "github.com/resumehub/resumehub-backend/pkg/auth"
	"github.com/resumehub/resumehub-backend/pkg/config"
	"github.com/resumehub/resumehub-backend/pkg/db"
	"github.com/resumehub/resumehub-backend/pkg/logger"
	"github.com/resumehub/resumehub-backend/pkg/metrics"
	"github.com/resumehub/resumehub-backend/pkg/oauth"
	"github.com/resumehub/resumehub-backend/pkg/redis"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth           auth.Service
	PersonalInfo   *resources.PersonalInfoService
	Summaries      *resources.SummariesService
	WorkExp        *resources.WorkExperiencesService
	Projects       *resources.ProjectsService
	Skills         *resources.SkillsService
	Education      *resources.EducationService
	Certifications *resources.CertificationsService
	Resumes        *resumes.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	cache *redis.Client,
	google *oauth.GoogleProvider,
	sessions middleware.SessionVerifier,
	httpMetrics *metrics.HTTPMetrics,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Get("/", controllers.Root())
	r.Get("/health", controllers.Health(dbP, cache, logg))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(svcs.Auth, cfg, logg))
		r.Post("/login", controllers.AuthLogin(svcs.Auth, cfg, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg, logg))

		if google != nil {
			r.Get("/google", controllers.AuthGoogleStart(google, cache, cfg, logg))
			r.Get("/google/callback", controllers.AuthGoogleCallback(svcs.Auth, cache, cfg, logg))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))
			r.Get("/profile", controllers.AuthProfile(svcs.Auth, logg))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, sessions, logg),
			middleware.RequireCapability(pkgAuth.CapManageOwnDocuments, logg),
		)

		r.Route("/personal-information", func(r chi.Router) {
			r.Post("/", controllers.PersonalInformationCreate(svcs.PersonalInfo, logg))
			r.Get("/", controllers.PersonalInformationGet(svcs.PersonalInfo, logg))
			r.Put("/", controllers.PersonalInformationUpdate(svcs.PersonalInfo, logg))
			r.Delete("/", controllers.PersonalInformationDelete(svcs.PersonalInfo, logg))
		})

		r.Route("/professional-summaries", func(r chi.Router) {
			r.Post("/", controllers.SummariesCreate(svcs.Summaries, logg))
			r.Get("/", controllers.SummariesList(svcs.Summaries, logg))
			r.Put("/{id}", controllers.SummariesUpdate(svcs.Summaries, logg))
			r.Delete("/{id}", controllers.SummariesDelete(svcs.Summaries, logg))
		})

		r.Route("/work-experiences", func(r chi.Router) {
			r.Post("/", controllers.WorkExperiencesCreate(svcs.WorkExp, logg))
			r.Get("/", controllers.WorkExperiencesList(svcs.WorkExp, logg))
			r.Put("/{id}", controllers.WorkExperiencesUpdate(svcs.WorkExp, logg))
			r.Delete("/{id}", controllers.WorkExperiencesDelete(svcs.WorkExp, logg))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", controllers.ProjectsCreate(svcs.Projects, logg))
			r.Get("/", controllers.ProjectsList(svcs.Projects, logg))
			r.Put("/{id}", controllers.ProjectsUpdate(svcs.Projects, logg))
			r.Delete("/{id}", controllers.ProjectsDelete(svcs.Projects, logg))
		})

		r.Route("/skills", func(r chi.Router) {
			r.Post("/", controllers.SkillsCreate(svcs.Skills, logg))
			r.Get("/", controllers.SkillsList(svcs.Skills, logg))
			r.Put("/{id}", controllers.SkillsUpdate(svcs.Skills, logg))
			r.Delete("/{id}", controllers.SkillsDelete(svcs.Skills, logg))
		})

		r.Route("/education", func(r chi.Router) {
			r.Post("/", controllers.EducationCreate(svcs.Education, logg))
			r.Get("/", controllers.EducationList(svcs.Education, logg))
			r.Put("/{id}", controllers.EducationUpdate(svcs.Education, logg))
			r.Delete("/{id}", controllers.EducationDelete(svcs.Education, logg))
		})

		r.Route("/certifications", func(r chi.Router) {
			r.Post("/", controllers.CertificationsCreate(svcs.Certifications, logg))
			r.Get("/", controllers.CertificationsList(svcs.Certifications, logg))
			r.Put("/{id}", controllers.CertificationsUpdate(svcs.Certifications, logg))
			r.Delete("/{id}", controllers.CertificationsDelete(svcs.Certifications, logg))
		})

		r.Route("/resumes", func(r chi.Router) {
			r.Post("/", controllers.ResumesCreate(svcs.Resumes, logg))
			r.Get("/", controllers.ResumesList(svcs.Resumes, logg))
			r.Get("/{id}", controllers.ResumesGet(svcs.Resumes, logg))
			r.Put("/{id}", controllers.ResumesUpdate(svcs.Resumes, logg))
			r.Delete("/{id}", controllers.ResumesDelete(svcs.Resumes, logg))
		})
	})

	return r
}
