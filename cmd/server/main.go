package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/api"
	"github.com/yourname/wellnessgrid/internal/auth"
	"github.com/yourname/wellnessgrid/internal/config"
	"github.com/yourname/wellnessgrid/internal/rag"
	"github.com/yourname/wellnessgrid/internal/service"
	"github.com/yourname/wellnessgrid/internal/storage"
)

type application struct {
	logger    internal.Logger
	entryRepo storage.EntryRepository
	toolRepo  storage.UserToolRepository
	score     *service.ScoreClient
	rag       *rag.Client
}

func (a *application) Logger() internal.Logger                { return a.logger }
func (a *application) EntryRepo() storage.EntryRepository     { return a.entryRepo }
func (a *application) ToolRepo() storage.UserToolRepository   { return a.toolRepo }
func (a *application) Score() *service.ScoreClient            { return a.score }
func (a *application) RAG() *rag.Client                       { return a.rag }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var (
		entryRepo storage.EntryRepository
		toolRepo  storage.UserToolRepository
		userRepo  storage.UserRepository
	)
	switch cfg.DBType {
	case "postgres":
		entryRepo, toolRepo, userRepo, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		ensureDemoUser(cfg.FileUsers)
		entryRepo, toolRepo, userRepo, err = storage.NewFileRepositories(cfg.FileUsers, cfg.FileEntry, cfg.FileTools, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(userRepo, logger)
	} else {
		provider = auth.NewJWTAuthProvider(cfg.AuthJWTSecret, logger)
	}

	app := &application{
		logger:    logger,
		entryRepo: entryRepo,
		toolRepo:  toolRepo,
		score:     service.NewScoreClient(cfg.ScoreServiceURL, logger),
		rag:       rag.NewClient(cfg.RAGServiceURL, logger),
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(api.RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := r.Group("/api", auth.AuthMiddleware(provider, cfg))
	protected.POST("/entries", api.PostEntry(app))
	protected.GET("/entries", api.GetEntries(app))
	protected.POST("/tools", api.PostTool(app))
	protected.GET("/tools", api.GetTools(app))
	protected.GET("/presets", api.GetPresets(app))
	protected.GET("/analytics", api.GetAnalytics(app))
	protected.GET("/actions", api.GetActions(app))
	protected.GET("/dashboard", api.GetDashboard(app))
	protected.POST("/ask", api.PostAsk(app))

	logger.Infof("Server running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}

// ensureDemoUser seeds the file-mode user store with the development login so
// a fresh checkout works against AUTH_TOKEN's default.
func ensureDemoUser(usersFile string) {
	dir := filepath.Dir(usersFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	if _, err := os.Stat(usersFile); os.IsNotExist(err) {
		_ = os.WriteFile(usersFile, []byte(`[{"id":"u1","token":"MOCK-TOKEN","name":"Demo User"}]`), 0644)
	}
}
