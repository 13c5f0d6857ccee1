package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bactien/YCBG/internal/handlers"
	"github.com/bactien/YCBG/internal/httpx"
	"github.com/bactien/YCBG/internal/models"
	"github.com/bactien/YCBG/internal/repo"
	"github.com/bactien/YCBG/internal/services"
)

// Deps carries the constructed collaborators the router wires to routes.
type Deps struct {
	DB        *gorm.DB
	Log       *logrus.Logger
	Suggester services.Suggester
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(d Deps) http.Handler {
	customers := repo.New[models.Customer, *models.Customer](d.DB)
	systems := repo.New[models.AluminumSystem, *models.AluminumSystem](d.DB)
	glassTypes := repo.New[models.GlassType, *models.GlassType](d.DB)
	accessories := repo.New[models.AccessorySet, *models.AccessorySet](d.DB)
	quotations := repo.New[models.QuotationRequest, *models.QuotationRequest](d.DB)

	codes := services.NewCodeGenerator(customers, quotations)
	settings := services.NewSettingsService(d.DB)

	qh := handlers.NewQuotationHandler(quotations, codes, settings)
	ch := &handlers.CustomerCodeHandler{Codes: codes}
	sh := &handlers.ShareHandler{Settings: settings}
	eh := handlers.NewExportHandler(quotations)
	dash := &handlers.DashboardHandler{Repo: quotations}
	sth := &handlers.SettingsHandler{Svc: settings}
	skh := &handlers.SketchHandler{}
	sgh := &handlers.SuggestHandler{Suggester: d.Suggester}

	r := chi.NewRouter()
	r.Use(requestLogger(d.Log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := d.DB.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/next-code", ch.NextCode)
		handlers.NewLibraryHandler(customers, "code desc").Mount(r)
	})
	r.Route("/systems", func(r chi.Router) {
		handlers.NewLibraryHandler(systems, "name asc").Mount(r)
	})
	r.Route("/glass-types", func(r chi.Router) {
		handlers.NewLibraryHandler(glassTypes, "name asc").Mount(r)
	})
	r.Route("/accessories", func(r chi.Router) {
		handlers.NewLibraryHandler(accessories, "name asc").Mount(r)
	})

	r.Route("/quotations", func(r chi.Router) {
		r.Get("/", qh.List)
		r.Post("/", qh.Save)
		r.Get("/next-code", qh.NextCode)
		r.Get("/export/csv", eh.CSV)
		r.Get("/export/xlsx", eh.XLSX)
		r.Get("/{id}", qh.Get)
		r.Delete("/{id}", qh.Delete)
		r.Get("/{id}/print", qh.Print)
	})

	r.Post("/share", sh.Encode)
	r.Get("/view/{payload}", sh.Decode)
	r.Get("/view/{payload}/print", sh.DecodePrint)

	r.Get("/dashboard", dash.Stats)

	r.Route("/settings/logo", func(r chi.Router) {
		r.Get("/", sth.GetLogo)
		r.Post("/", sth.SaveLogo)
		r.Delete("/", sth.RemoveLogo)
		r.Get("/thumbnail", sth.Thumbnail)
	})

	r.Post("/sketch/flatten", skh.Flatten)
	r.Post("/suggest", sgh.Suggest)

	return r
}

func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}
