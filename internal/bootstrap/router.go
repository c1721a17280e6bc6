// Package bootstrap assembles the HTTP engine from the application modules.
package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/config"
	"github.com/festy23/ticketing/internal/health"
	"github.com/festy23/ticketing/internal/middleware"
	projectRouter "github.com/festy23/ticketing/internal/project/router"
	"github.com/festy23/ticketing/internal/response"
	taskRouter "github.com/festy23/ticketing/internal/task/router"
	userRouter "github.com/festy23/ticketing/internal/user/router"
)

// APIPrefix is the base path of every module.
const APIPrefix = "/api/v1"

// RouterDeps holds everything BuildRouter needs.
type RouterDeps struct {
	Config   config.Config
	DB       *gorm.DB
	Logger   *zap.SugaredLogger
	Verifier middleware.TokenVerifier
}

// BuildRouter returns the engine with global middleware, /health and the
// authenticated /api/v1 modules. Project and task calls are observed by the
// interceptor; user calls only when Config.Interceptor.IncludeUserRoutes is set.
func BuildRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)
	if deps.Config.CORS.Enabled() {
		r.Use(cors.New(corsConfig(deps.Config.CORS)))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Write(c, response.New("resource not found", nil, http.StatusNotFound))
	})
	r.GET("/health", health.New(deps.DB, deps.Logger).Check)

	api := r.Group(APIPrefix, middleware.Authenticate(deps.Verifier))
	observed := middleware.Interceptor(deps.Logger)

	projectRouter.RegisterRoutes(api, deps.DB, deps.Logger, observed)
	taskRouter.RegisterRoutes(api, deps.DB, deps.Logger, observed)
	if deps.Config.Interceptor.IncludeUserRoutes {
		userRouter.RegisterRoutes(api, deps.DB, deps.Logger, observed)
	} else {
		userRouter.RegisterRoutes(api, deps.DB, deps.Logger)
	}

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAll() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return c
}
