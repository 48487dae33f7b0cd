package bootstrap

import (
	"log"

	"ai-counseling-be/internal/config"
	"ai-counseling-be/internal/controller"
	"ai-counseling-be/internal/pkg/logger"
	"ai-counseling-be/internal/repository/contract"
	"ai-counseling-be/internal/repository/implementation"
	"ai-counseling-be/internal/repository/memory"
	"ai-counseling-be/internal/service"
	adminEvents "ai-counseling-be/pkg/admin/events"
	"ai-counseling-be/pkg/llm"
	"ai-counseling-be/pkg/llm/factory"
	"ai-counseling-be/pkg/prediction"
	"ai-counseling-be/pkg/retrieval"

	pktNats "ai-counseling-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CounselorController controller.ICounselorController
	ScenarioController  controller.IScenarioController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for graceful shutdown
	NatsPublisher *pktNats.Publisher
}

// NewContainer wires every component. db may be nil when no analytics
// database is configured; the analytics trail is then dropped.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional, admin corpus events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Corpus
	fileRepo := implementation.NewScenarioFileRepository(cfg.Corpus.FilePath)
	corpusRepo := memory.NewCorpusRepository(fileRepo, sysLogger)
	engine := retrieval.NewEngine(corpusRepo, sysLogger)

	// 4. AI Components
	// No API key means demo mode: replies come from the corpus templates.
	var llmProvider llm.LLMProvider
	if cfg.Ai.GeminiApiKey != "" {
		llmProvider, err = factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.GeminiApiKey,
		)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[INFO] No LLM API key configured, running in demo mode")
	}

	predictionClient := prediction.NewClient(cfg.Ai.PredictionServiceURL)

	// 5. Analytics Pipeline
	var analysisRepo contract.AnalysisRepository
	if db != nil {
		analysisRepo = implementation.NewAnalysisRepository(db)
	} else {
		log.Printf("[WARN] No analytics database configured, analysis records are dropped")
	}

	publisherService := service.NewPublisherService(cfg.App.AnalysisTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AnalysisTopicName,
		analysisRepo,
		sysLogger,
	)

	// 6. Services
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	counselorService := service.NewCounselorService(
		engine,
		llmProvider,
		cfg.Ai.LLMModel,
		predictionClient,
		publisherService,
		sysLogger,
	)
	scenarioService := service.NewScenarioService(corpusRepo, adminEventPublisher, sysLogger)

	// 7. Controllers
	return &Container{
		CounselorController: controller.NewCounselorController(counselorService),
		ScenarioController:  controller.NewScenarioController(scenarioService),

		ConsumerService: consumerService,
		NatsPublisher:   natsPub,
	}
}
