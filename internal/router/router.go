package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "pets-api/docs"
	mem "pets-api/internal/adapters/storage/memory"
	"pets-api/internal/adapters/storage/sqlstore"
	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
	"pets-api/internal/middleware"
	"pets-api/internal/platform/logger"
	"pets-api/internal/platform/pagination"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL con ese dialecto. Si no, in-memory.
	DB      *sql.DB
	Dialect sqlstore.Dialect

	Logger     logger.Logger
	Pagination pagination.Config
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	if opts.Pagination.PageSize <= 0 {
		opts.Pagination = pagination.Config{PageSize: 10, MaxPageSize: 100}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	var (
		petRepo   pets.Repository
		groupRepo groups.Repository
		traitRepo traits.Repository
		ping      func(ctx context.Context) error
	)

	if opts.DB != nil {
		dialect := opts.Dialect
		if dialect == 0 {
			dialect = sqlstore.Postgres
		}
		petRepo = sqlstore.NewPetsRepo(opts.DB, dialect)
		groupRepo = sqlstore.NewGroupsRepo(opts.DB, dialect)
		traitRepo = sqlstore.NewTraitsRepo(opts.DB, dialect)
		ping = opts.DB.PingContext
	} else {
		store := mem.New()
		petRepo = mem.NewPetRepo(store)
		groupRepo = mem.NewGroupRepo(store)
		traitRepo = mem.NewTraitRepo(store)
		ping = store.Ping
	}

	r.Get("/health", healthHandler(ping, log))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	petsSvc := pets.NewService(petRepo, log)
	groupsSvc := groups.NewService(groupRepo)
	traitsSvc := traits.NewService(traitRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, opts.Pagination, log)
	groups.RegisterRoutes(r, groupsSvc, opts.Pagination, log)
	traits.RegisterRoutes(r, traitsSvc, opts.Pagination, log)

	return r
}

// healthHandler godoc
// @Summary Health check
// @Description Devuelve ok si el store responde al ping.
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "unavailable"
// @Router /health [get]
func healthHandler(ping func(ctx context.Context) error, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := ping(ctx); err != nil {
			log.Warn("health: store ping failed", map[string]any{"err": err})
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
