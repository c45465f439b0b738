package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/edugest/edugest-api/internal/handler"
	"github.com/edugest/edugest-api/internal/middleware"
	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/service"
	"github.com/edugest/edugest-api/pkg/config"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
	"github.com/edugest/edugest-api/pkg/logger"
	corsmiddleware "github.com/edugest/edugest-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edugest/edugest-api/pkg/middleware/requestid"
	"github.com/edugest/edugest-api/pkg/response"
)

type tokenVerifier interface {
	Verify(token string) (*models.JWTClaims, error)
}

// Mounter registers the routes of one resource on its group.
type Mounter interface {
	Mount(group *gin.RouterGroup)
}

// Resource binds a table name to its handler; the table is the URL segment.
type Resource struct {
	Table   string
	Handler Mounter
}

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Health    *handler.MetricsHandler
	Resources []Resource
}

// Setup builds the gin engine with the global middleware chain and every route.
func Setup(cfg *config.Config, logr *zap.Logger, tokens tokenVerifier, metrics *service.MetricsService, handlers Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics))
		r.GET("/metrics", handlers.Health.Prometheus)
	}

	r.GET("/health", handlers.Health.Health)
	r.GET("/ready", handlers.Health.Ready)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireToken := middleware.JWT(tokens)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", requireToken, handlers.Auth.Me)
	}

	api := r.Group("/api", requireToken)
	for _, res := range handlers.Resources {
		res.Handler.Mount(api.Group("/" + res.Table))
	}

	r.NoRoute(notFound(cfg.StaticDir))

	return r
}

// notFound serves the dashboard assets for GET requests outside /api when a
// static directory is configured.
func notFound(staticDir string) gin.HandlerFunc {
	var files http.Handler
	if staticDir != "" {
		files = http.FileServer(http.Dir(staticDir))
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if files != nil && (method == http.MethodGet || method == http.MethodHead) && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		response.Error(c, appErrors.ErrNotFound)
	}
}
