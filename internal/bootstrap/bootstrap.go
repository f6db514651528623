package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appControllers "github.com/campuskit/coursecat/internal/app/controllers"
	appRepos "github.com/campuskit/coursecat/internal/app/repositories"
	appRoutes "github.com/campuskit/coursecat/internal/app/routes"
	appServices "github.com/campuskit/coursecat/internal/app/services"
	"github.com/campuskit/coursecat/internal/config"
	"github.com/campuskit/coursecat/internal/metrics"
	appMiddleware "github.com/campuskit/coursecat/internal/middleware"
	"github.com/campuskit/coursecat/internal/observability"
	"github.com/campuskit/coursecat/internal/pkg/flash"
	"github.com/campuskit/coursecat/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	Metrics          *metrics.RequestMetrics
	Registry         *prometheus.Registry
	Flashes          *flash.Store
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTracing installs the OTLP tracer provider.
func SetupTracing(cfg *config.Config, lgr zerolog.Logger) (*observability.TracerProvider, error) {
	tp, err := observability.InitTracing(observability.TracingConfig{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize tracing")
		return nil, err
	}
	lgr.Info().
		Str("endpoint", cfg.Tracing.Endpoint).
		Str("service", cfg.Tracing.ServiceName).
		Msg("Tracing configured")
	return tp, nil
}

// BuildDependencies initializes the repository, service, metrics and controller.
func BuildDependencies(cfg *config.Config, tp *observability.TracerProvider, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(collectors.NewGoCollector())
	deps.Metrics = metrics.New(deps.Registry)

	deps.Flashes = flash.NewStore(cfg.Session.Secret)

	courseRepo := appRepos.NewCourseRepository(cfg.Catalog.Path)
	deps.CourseService = appServices.NewCourseService(courseRepo)

	deps.CourseController = appControllers.NewCourseController(
		deps.CourseService,
		deps.Metrics,
		tp.Tracer(),
		deps.Flashes,
	)

	lgr.Info().Str("catalog", cfg.Catalog.Path).Msg("Dependencies initialized")
	return deps
}

// SetupRouter builds the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		otelgin.Middleware(cfg.Tracing.ServiceName),
		appMiddleware.Recovery(),
	)

	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	appRoutes.SetupRouter(router, deps.CourseController, deps.Registry)

	lgr.Info().Str("templates", cfg.Server.TemplatesGlob).Msg("Router configured")
	return router
}
