package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/billing"
	"resume-builder/internal/export"
	"resume-builder/internal/gap"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/usage"
	"resume-builder/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ResumeRepo resume.Repo
	UsersRepo  users.Repo

	ResumeService *resume.Service
	UsageService  *usage.Service
	GapService    *gap.Service
	ExportService *export.Service
	UsersService  *users.Service

	ResumeHandler  *resume.Handler
	ExportHandler  *export.Handler
	GapHandler     *gap.Handler
	UsageHandler   *usage.Handler
	UsersHandler   *users.Handler
	BillingHandler *billing.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ResumeHandler:  app.ResumeHandler,
		ExportHandler:  app.ExportHandler,
		GapHandler:     app.GapHandler,
		UsageHandler:   app.UsageHandler,
		UsersHandler:   app.UsersHandler,
		BillingHandler: app.BillingHandler,
		GoogleAuth:     app.GoogleAuth,
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
	return sqlDB, nil
}

func buildServices(app *App) error {
	var resumeRepo resume.Repo
	var userRepo users.Repo
	var usageSvc *usage.Service

	if app.DB != nil {
		resumeRepo = &resume.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		resumeRepo = resume.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		usageSvc = usage.NewService()
	}
	app.ResumeRepo = resumeRepo
	app.UsersRepo = userRepo
	app.UsageService = usageSvc

	app.ResumeService = &resume.Service{Repo: resumeRepo, Usage: usageSvc}
	app.UsersService = &users.Service{Repo: userRepo}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "gemini" {
		if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
			geminiClient, err := gemini.NewClient(key, app.Config.LLMModel)
			if err != nil {
				return err
			}
			llmClient = geminiClient
		} else {
			log.Printf("bootstrap: GEMINI_API_KEY empty; analysis endpoints disabled")
		}
	}
	app.GapService = &gap.Service{Resumes: app.ResumeService, LLM: llmClient}

	app.ExportService = &export.Service{
		Resumes: app.ResumeService,
		Engine:  export.NewChromeEngine(app.Config.ChromePath),
	}

	app.ResumeHandler = resume.NewHandler(app.ResumeService)
	app.ExportHandler = export.NewHandler(app.ExportService)
	app.GapHandler = gap.NewHandler(app.GapService)
	app.UsageHandler = usage.NewHandler(app.UsageService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.BillingHandler = billing.NewHandler(app.UsersService, app.Config.CheckoutURL)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
