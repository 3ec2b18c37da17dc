package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	mem "pet-lost-and-found/internal/adapters/storage/memory"
	pg "pet-lost-and-found/internal/adapters/storage/postgres"
	"pet-lost-and-found/internal/auth"
	"pet-lost-and-found/internal/domain/foundpets"
	"pet-lost-and-found/internal/domain/messages"
	"pet-lost-and-found/internal/domain/missingpets"
	"pet-lost-and-found/internal/domain/users"
	"pet-lost-and-found/internal/middleware"
	"pet-lost-and-found/internal/platform/logger"
	"pet-lost-and-found/internal/uploads"
)

type Options struct {
	Tokens *auth.Tokens
	Photos uploads.Store
	Log    logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-access-token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		usersRepo       users.Repository
		missingPetsRepo missingpets.Repository
		foundPetsRepo   foundpets.Repository
		messagesRepo    messages.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		missingPetsRepo = pg.NewMissingPetsRepo(db)
		foundPetsRepo = pg.NewFoundPetsRepo(db)
		messagesRepo = pg.NewMessagesRepo(db)
	} else {
		usersRepo = mem.NewUsersRepo()
		missingPetsRepo = mem.NewMissingPetsRepo()
		foundPetsRepo = mem.NewFoundPetsRepo()
		messagesRepo = mem.NewMessagesRepo()
	}

	photos := opts.Photos
	if photos == nil {
		photos = uploads.Discard{}
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	missingSvc := missingpets.NewService(missingPetsRepo)
	foundSvc := foundpets.NewService(foundPetsRepo)
	messagesSvc := messages.NewService(messagesRepo)

	requireAuth := middleware.RequireAuth(opts.Tokens)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, opts.Tokens, requireAuth, log)
	missingpets.RegisterRoutes(r, missingSvc, photos, requireAuth, log)
	foundpets.RegisterRoutes(r, foundSvc, photos, requireAuth, log)
	messages.RegisterRoutes(r, messagesSvc, requireAuth, log)

	return r
}
