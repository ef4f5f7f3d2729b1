package router

import (
	"database/sql"
	"net/http"

	"doggohub/docs"
	mem "doggohub/internal/adapters/storage/memory"
	pg "doggohub/internal/adapters/storage/postgres"
	"doggohub/internal/domain/dogs"
	"doggohub/internal/domain/health"
	"doggohub/internal/domain/owners"
	"doggohub/internal/middleware"
	"doggohub/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Si viene DB usa Postgres; si no, repos in-memory (modo dev).
	DB  *sql.DB
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/docs/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(docs.OpenAPI)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json")))

	var (
		ownersRepo owners.Repository
		dogsRepo   dogs.Repository
		healthRepo health.Repository
	)

	if opts.DB != nil {
		ownersRepo = pg.NewOwnersRepo(opts.DB)
		dogsRepo = pg.NewDogsRepo(opts.DB)
		healthRepo = pg.NewHealthRepo(opts.DB)
	} else {
		links := mem.NewDogLinks()
		ownersRepo = mem.NewOwnersRepo(links)
		dogsRepo = mem.NewDogsRepo(links)
		healthRepo = mem.NewHealthRepo()
	}

	// Services por módulo. El de dogs embebe owners en sus respuestas;
	// el de health valida perros contra el repo de dogs directamente.
	ownersSvc := owners.NewService(ownersRepo, dogsRepo)
	dogsSvc := dogs.NewService(dogsRepo, ownersSvc)
	healthSvc := health.NewService(healthRepo, dogsRepo)

	owners.RegisterRoutes(r, ownersSvc)
	dogs.RegisterRoutes(r, dogsSvc)
	health.RegisterRoutes(r, healthSvc)

	return r
}
