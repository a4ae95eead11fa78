package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-grooming-manager/docs"
	mem "pet-grooming-manager/internal/adapters/storage/memory"
	pg "pet-grooming-manager/internal/adapters/storage/postgres"
	"pet-grooming-manager/internal/domain/appointments"
	"pet-grooming-manager/internal/domain/clients"
	"pet-grooming-manager/internal/domain/dashboard"
	"pet-grooming-manager/internal/domain/pets"
	"pet-grooming-manager/internal/middleware"
	"pet-grooming-manager/internal/platform/logger"
	"pet-grooming-manager/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)

	// Si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional; nil => sin request log.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		clientsRepo clients.Repository
		petsRepo    pets.Repository
		apptsRepo   appointments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		clientsRepo = pg.NewClientsRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		apptsRepo = pg.NewAppointmentsRepo(db)
	} else {
		store := mem.NewStore()
		clientsRepo = store.Clients()
		petsRepo = store.Pets()
		apptsRepo = store.Appointments()
	}

	// Services por módulo. pets valida dueños contra clients y
	// appointments valida mascotas contra pets (interfaces estructurales,
	// sin imports cruzados entre dominios).
	clientsSvc := clients.NewService(clientsRepo)
	petsSvc := pets.NewService(petsRepo, clientsSvc)
	apptsSvc := appointments.NewService(apptsRepo, petsSvc)
	dashSvc := dashboard.NewService(clientsSvc, petsSvc, apptsSvc)

	clients.RegisterRoutes(r, clientsSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	dashboard.RegisterRoutes(r, dashSvc)

	return r
}
