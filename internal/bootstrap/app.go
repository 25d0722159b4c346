package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/pdf"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/resumes"
	sharedauth "portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
	"portfolio-backend/internal/shared/storage/object"
	localstore "portfolio-backend/internal/shared/storage/object/local"
	s3store "portfolio-backend/internal/shared/storage/object/s3"
)

// App holds the wired application dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Tokens         *sharedauth.TokenService
	ResumesRepo    resumes.ResumesRepo
	ProjectsRepo   projects.ProjectsRepo
	ResumeService  *resumes.Service
	ProjectService *projects.Service
	AuthService    *auth.Service
	ResumeHandler  *resumes.Handler
	ProjectHandler *projects.Handler
	AuthHandler    *auth.Handler
}

// Build prepares dependencies and the router. With an empty DATABASE_URL the
// app runs on in-memory repositories, which is what the tests use.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Tokens: sharedauth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		DB:             app.DB,
		Tokens:         app.Tokens,
		AuthHandler:    app.AuthHandler,
		ResumeHandler:  app.ResumeHandler,
		ProjectHandler: app.ProjectHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.ProjectsRepo = &projects.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.ProjectsRepo = projects.NewMemoryRepo()
	}

	app.ResumeService = &resumes.Service{
		Repo:     app.ResumesRepo,
		Store:    app.Store,
		Renderer: pdf.NewGenerator(),
	}
	app.ProjectService = &projects.Service{Repo: app.ProjectsRepo}
	app.AuthService = auth.NewService(app.Config.OwnerPassword, app.Tokens)

	app.ResumeHandler = resumes.NewHandler(app.ResumeService)
	app.ProjectHandler = projects.NewHandler(app.ProjectService)
	app.AuthHandler = auth.NewHandler(app.AuthService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
