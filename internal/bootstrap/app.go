package bootstrap

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/assist"
	"resume-builder/internal/assist/gemini"
	"resume-builder/internal/assist/openai"
	"resume-builder/internal/contentapi"
	"resume-builder/internal/export"
	"resume-builder/internal/resume"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Assist assist.Client

	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	ResumesHandler *resumes.Handler

	ArtifactsRepo  export.ArtifactsRepo
	ExportService  *export.Service
	ExportHandler  *export.Handler
	DocumentSource export.DocumentSource
}

// Build prepares shared dependencies and wires the router.
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

	assistClient, err := buildAssist(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Assist: assistClient,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ResumesHandler: app.ResumesHandler,
		ExportHandler:  app.ExportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildAssist(ctx context.Context, cfg config.Config) (assist.Client, error) {
	switch cfg.AssistProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			telemetry.Warn("bootstrap.assist_unconfigured", map[string]any{"provider": "openai"})
			return assistPlaceholder{}, nil
		}
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.AssistModel)
	default:
		if cfg.GeminiAPIKey == "" {
			telemetry.Warn("bootstrap.assist_unconfigured", map[string]any{"provider": "gemini"})
			return assistPlaceholder{}, nil
		}
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.AssistModel)
	}
}

func buildServices(app *App) error {
	var resumesRepo resumes.Repo
	var artifactsRepo export.ArtifactsRepo
	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
		artifactsRepo = &export.PGArtifactsRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
		artifactsRepo = export.NewMemoryArtifactsRepo()
	}

	resumesSvc := resumes.NewService(resumesRepo)

	var source export.DocumentSource
	if app.Config.ContentAPIBaseURL != "" {
		source = contentapi.New(app.Config.ContentAPIBaseURL, app.Config.ContentAPIKey)
	} else {
		source = localSource{svc: resumesSvc}
	}

	exportSvc := &export.Service{
		Assist:    app.Assist,
		Renderer:  export.NewChromeRenderer(),
		Store:     app.Store,
		Artifacts: artifactsRepo,
		Docs:      source,
		Uploads:   app.Store,
	}

	app.ResumesRepo = resumesRepo
	app.ResumesService = resumesSvc
	app.ResumesHandler = resumes.NewHandler(resumesSvc)
	app.ArtifactsRepo = artifactsRepo
	app.ExportService = exportSvc
	app.ExportHandler = export.NewHandler(exportSvc)
	app.DocumentSource = source
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

// localSource adapts the in-process content service to the exporter's
// document lookup, flattening a stored record the same way the HTTP client
// flattens the wire envelope.
type localSource struct {
	svc *resumes.Service
}

func (s localSource) GetByID(ctx context.Context, id string) (resume.Document, error) {
	rec, err := s.svc.Get(ctx, id)
	if err != nil {
		return resume.Document{}, err
	}

	attrs := make(map[string]any, len(rec.Attributes)+1)
	for k, v := range rec.Attributes {
		attrs[k] = v
	}
	attrs["id"] = rec.ID

	raw, err := json.Marshal(attrs)
	if err != nil {
		return resume.Document{}, err
	}
	return resume.DecodeAPIDocument(raw)
}

type assistPlaceholder struct{}

func (assistPlaceholder) SendPrompt(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", errors.New("assist client not configured")
}
