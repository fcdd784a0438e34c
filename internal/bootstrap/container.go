package bootstrap

import (
	"log"
	"time"

	"testdesk-be/internal/config"
	"testdesk-be/internal/controller"
	"testdesk-be/internal/pkg/logger"
	"testdesk-be/internal/repository/unitofwork"
	"testdesk-be/internal/service"
	"testdesk-be/pkg/ask/explain"
	"testdesk-be/pkg/ask/retrieval"
	"testdesk-be/pkg/llm/ollama"

	"gorm.io/gorm"
)

type Container struct {
	AskController controller.IAskController
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Generation service
	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	log.Printf("[INFO] Using LLM Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)

	// 3. Question pipeline
	retriever := retrieval.NewRetriever(uowFactory)
	explainer := explain.NewExplainer(llmProvider, explain.Config{
		CacheTTL:          time.Duration(cfg.Ask.CacheTTLSeconds) * time.Second,
		CacheCapacity:     cfg.Ask.CacheCapacity,
		GenerationTimeout: time.Duration(cfg.Ai.TimeoutSeconds) * time.Second,
	}, sysLogger)

	askService := service.NewAskService(retriever, explainer, sysLogger)

	return &Container{
		AskController: controller.NewAskController(askService),
		Logger:        sysLogger,
	}
}
