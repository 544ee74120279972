package router

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "soulbuddy/docs" // registra el spec generado por swag
	"soulbuddy/internal/adapters/generation/static"
	"soulbuddy/internal/adapters/signinfo/csvdata"
	mem "soulbuddy/internal/adapters/storage/memory"
	"soulbuddy/internal/domain/readings"
	"soulbuddy/internal/domain/zodiac"
	"soulbuddy/internal/middleware"
	"soulbuddy/internal/platform/logger"
	"soulbuddy/internal/ports/signinfo"
)

type Options struct {
	// Opcional: si viene nil se arma un servicio in-memory con el generador estático (modo dev).
	Readings *readings.Service

	// Opcional: default = dataset embebido.
	Signs signinfo.Lookup

	Logger logger.Logger

	// Vacío => "*" (el frontend corre en otro origen).
	AllowedOrigins []string
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	signs := opts.Signs
	if signs == nil {
		t, err := csvdata.LoadDefault()
		if err != nil {
			// el CSV está embebido: solo falla si el binario se armó mal
			panic(fmt.Sprintf("router: load embedded sign data: %v", err))
		}
		signs = t
	}

	svc := opts.Readings
	if svc == nil {
		svc = readings.NewService(readings.Deps{
			Repo:      mem.NewReadingsRepo(),
			Generator: static.New(),
			Signs:     signs,
			Logger:    log,
		})
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", healthHandler)

	// Rutas por módulo
	readings.RegisterRoutes(r, svc)
	zodiac.RegisterRoutes(r, signs)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// healthHandler godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "healthy"})
}
