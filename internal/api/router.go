package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ninzizah/mount-kigali-grading-system/internal/api/handler"
	"github.com/ninzizah/mount-kigali-grading-system/internal/api/middleware"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// Dependencies carries the explicitly constructed collaborators the router
// wires into handlers. Nothing here is a hidden singleton.
type Dependencies struct {
	Users       ports.UserService
	Sessions    ports.SessionStore
	Assessments ports.AssessmentService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("grading"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Users, deps.Sessions)
	userHandler := handler.NewUserHandler(deps.Users)
	assessmentHandler := handler.NewAssessmentHandler(deps.Assessments)

	session := middleware.Session(deps.Sessions)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, session)
	e.POST("/auth/logout", authHandler.Logout, session)

	// --- User management (admin only) ---
	users := e.Group("/v1/users", session, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Assessment flows ---
	assessments := e.Group("/v1/assessments", session)
	assessments.POST("/questions", assessmentHandler.GenerateQuestions,
		middleware.RBAC(domain.RoleLecturer, domain.RoleAdmin))
	assessments.POST("/grade", assessmentHandler.GradePaper,
		middleware.RBAC(domain.RoleLecturer, domain.RoleAdmin))
	assessments.POST("/highlight", assessmentHandler.HighlightAnswers,
		middleware.RBAC(domain.RoleStudent, domain.RoleLecturer, domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
