package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quicknote/notes-api/internal/api/handler"
	"github.com/quicknote/notes-api/internal/api/middleware"
	"github.com/quicknote/notes-api/internal/core/ports"
)

// Deps carries the constructed services and connections the router wires
// into handlers.
type Deps struct {
	AuthService     ports.AuthService
	NoteService     ports.NoteService
	ActivityService ports.ActivityService
	JWTSecret       string
	Mongo           *mongo.Database
	Redis           *redis.Client
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	noteHandler := handler.NewNoteHandler(deps.NoteService, deps.ActivityService)

	// --- Public API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/user", authHandler.Signup)
	apiGroup.POST("/user/login", authHandler.Login)

	// --- Authenticated note routes ---
	notes := apiGroup.Group("/notes", middleware.Auth(deps.JWTSecret))
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)
	notes.GET("/:id/activity", noteHandler.Activity)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
