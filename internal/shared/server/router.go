package server

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resumes"
	sharedauth "portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// RouterDeps carries the wired handlers and services the router needs.
type RouterDeps struct {
	Config         config.Config
	DB             *sql.DB
	Tokens         *sharedauth.TokenService
	AuthHandler    *auth.Handler
	ResumeHandler  *resumes.Handler
	ProjectHandler *projects.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Reads under /api/v1 are public; mutations sit behind the owner group.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Tokens),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 25, Burst: 50},
				"LOGIN":   {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/auth/login" {
					return "LOGIN"
				}
				return ""
			},
		}),
	)

	r.GET("/healthz", healthHandler(deps.DB))
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	owner := api.Group("", middleware.RequireOwner())

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api, owner)
	}
	if deps.ProjectHandler != nil {
		deps.ProjectHandler.RegisterRoutes(api, owner)
	}

	return r
}

func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"ok": true, "storage": "memory"}
		if sqlDB != nil {
			status["storage"] = "postgres"
			if err := sqlDB.PingContext(c.Request.Context()); err != nil {
				status["ok"] = false
				status["error"] = "database unreachable"
				respond.JSON(c, http.StatusServiceUnavailable, status)
				return
			}
		}
		respond.JSON(c, http.StatusOK, status)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
