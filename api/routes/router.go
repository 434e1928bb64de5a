package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drishtilibrary/drishti-backend/api/controllers"
	"github.com/drishtilibrary/drishti-backend/api/middleware"
	"github.com/drishtilibrary/drishti-backend/internal/contacts"
	"github.com/drishtilibrary/drishti-backend/internal/content"
	"github.com/drishtilibrary/drishti-backend/internal/settings"
	"github.com/drishtilibrary/drishti-backend/pkg/config"
	"github.com/drishtilibrary/drishti-backend/pkg/db"
	"github.com/drishtilibrary/drishti-backend/pkg/logger"
	"github.com/drishtilibrary/drishti-backend/pkg/metrics"
)

// Deps carries everything the router needs to mount the API surface.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer

	Settings   settings.Service
	Slides     content.SlideService
	Gallery    content.GalleryService
	Shifts     content.ShiftService
	Facilities content.FacilityService
	Contacts   contacts.Service
}

// NewRouter mounts the public site API, the admin API and the operational
// endpoints onto a chi router.
func NewRouter(deps Deps) chi.Router {
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.Metrics(deps.Metrics))

	if deps.Gatherer != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(deps.DB, logg))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(deps.Config.CORS))

		r.Get("/settings", controllers.GetPublicSettings(deps.Settings, logg))
		r.Get("/slides", controllers.GetPublicSlides(deps.Slides, logg))
		r.Get("/gallery", controllers.GetPublicGallery(deps.Gallery, logg))
		r.Get("/shifts", controllers.GetPublicShifts(deps.Shifts, logg))
		r.Get("/facilities", controllers.GetPublicFacilities(deps.Facilities, logg))
		r.Post("/contact", controllers.SubmitContact(deps.Contacts, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", controllers.AdminLogin(deps.Config.Admin, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(deps.Config.Admin, logg))

				r.Get("/settings", controllers.ListSettings(deps.Settings, logg))
				r.Put("/settings/{key}", controllers.UpdateSetting(deps.Settings, logg))

				r.Get("/slides", controllers.ListSlides(deps.Slides, logg))
				r.Post("/slides", controllers.CreateSlide(deps.Slides, logg))
				r.Put("/slides/{id}", controllers.UpdateSlide(deps.Slides, logg))
				r.Delete("/slides/{id}", controllers.DeleteSlide(deps.Slides, logg))

				r.Get("/gallery", controllers.ListGallery(deps.Gallery, logg))
				r.Post("/gallery", controllers.CreateGalleryImage(deps.Gallery, logg))
				r.Put("/gallery/{id}", controllers.UpdateGalleryImage(deps.Gallery, logg))
				r.Delete("/gallery/{id}", controllers.DeleteGalleryImage(deps.Gallery, logg))

				r.Get("/shifts", controllers.ListShifts(deps.Shifts, logg))
				r.Post("/shifts", controllers.CreateShift(deps.Shifts, logg))
				r.Put("/shifts/{id}", controllers.UpdateShift(deps.Shifts, logg))
				r.Delete("/shifts/{id}", controllers.DeleteShift(deps.Shifts, logg))

				r.Get("/facilities", controllers.ListFacilities(deps.Facilities, logg))
				r.Post("/facilities", controllers.CreateFacility(deps.Facilities, logg))
				r.Put("/facilities/{id}", controllers.UpdateFacility(deps.Facilities, logg))
				r.Delete("/facilities/{id}", controllers.DeleteFacility(deps.Facilities, logg))

				r.Get("/contacts", controllers.ListContacts(deps.Contacts, logg))
				r.Put("/contacts/{id}/read", controllers.MarkContactRead(deps.Contacts, logg))
				r.Delete("/contacts/{id}", controllers.DeleteContact(deps.Contacts, logg))
			})
		})
	})

	return r
}
