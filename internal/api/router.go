package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ianglenncurilan/web-quickwork/docs"
	"github.com/ianglenncurilan/web-quickwork/internal/api/handler"
	"github.com/ianglenncurilan/web-quickwork/internal/api/middleware"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

// Deps carries the stores and infrastructure the router serves. The stores
// are constructed once in main and injected; handlers never build their own.
type Deps struct {
	Sessions     ports.SessionStore
	JobPosts     ports.JobPostStore
	Applications ports.ApplicationStore
	Ratings      ports.RatingStore

	Redis     *redis.Client // optional, readiness probe only
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("quickwork"))

	authRequired := middleware.Auth(d.JWTSecret)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions)
	jobHandler := handler.NewJobPostHandler(d.JobPosts)
	applicationHandler := handler.NewApplicationHandler(d.Applications, d.JobPosts)
	ratingHandler := handler.NewRatingHandler(d.Ratings)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/profile", authHandler.Profile)
	e.PATCH("/auth/profile", authHandler.UpdateProfile)

	// --- Job board routes ---
	v1 := e.Group("/v1")
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.POST("/jobs", jobHandler.Create, authRequired)
	v1.PUT("/jobs/:id", jobHandler.Update, authRequired)
	v1.DELETE("/jobs/:id", jobHandler.Delete, authRequired)
	v1.GET("/jobs/:id/ratings", ratingHandler.ListByJob)
	v1.GET("/jobs/:id/applications", applicationHandler.ListByJob, authRequired)

	v1.GET("/applications", applicationHandler.ListMine, authRequired)
	v1.POST("/applications", applicationHandler.Submit, authRequired)

	v1.POST("/ratings", ratingHandler.Submit, authRequired)
	v1.GET("/ratings/average/:jobID", ratingHandler.Average)

	// --- Page table ---
	registerPageRoutes(e)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
