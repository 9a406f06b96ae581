package api

import (
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/rag"
	"github.com/yourname/wellnessgrid/internal/service"
	"github.com/yourname/wellnessgrid/internal/storage"
)

type App interface {
	Logger() internal.Logger
	EntryRepo() storage.EntryRepository
	ToolRepo() storage.UserToolRepository
	Score() *service.ScoreClient
	RAG() *rag.Client
}
