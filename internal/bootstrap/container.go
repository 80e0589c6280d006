package bootstrap

import (
	"context"
	"log"
	"time"

	"hr-assistant-be/internal/config"
	"hr-assistant-be/internal/controller"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/memory"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/internal/service"
	"hr-assistant-be/pkg/assistant"
	"hr-assistant-be/pkg/assistant/fallback"
	"hr-assistant-be/pkg/llm"
	"hr-assistant-be/pkg/llm/factory"
	"hr-assistant-be/pkg/nlp"

	pktNats "hr-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS (optional mirror of interaction events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (per-user daily usage limiter)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 4. LLM Provider
	baseProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	llmProvider := llm.NewResilientProvider(
		baseProvider,
		time.Duration(cfg.Ai.TimeoutSec)*time.Second,
		cfg.Ai.MaxRetries,
	)
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Classifier
	corpus := nlp.DefaultCorpus
	if cfg.Assistant.CorpusPath != "" {
		loaded, err := nlp.LoadCorpus(cfg.Assistant.CorpusPath)
		if err != nil {
			log.Printf("[WARN] Failed to load corpus override %s: %v. Using built-in corpus", cfg.Assistant.CorpusPath, err)
		} else {
			corpus = loaded
			log.Printf("[INFO] Loaded classifier corpus override: %d examples", len(loaded))
		}
	}
	classifier := nlp.NewClassifier(corpus)
	if err := classifier.Build(); err != nil {
		log.Fatalf("[FATAL] Failed to train classifier: %v", err)
	}

	// 6. Query Pipeline
	policyCache := memory.NewPolicyCache()
	fallbackEngine := fallback.NewEngine(llmProvider, sysLogger)
	router := assistant.NewRouter(
		classifier,
		fallbackEngine,
		cfg.Assistant.ConfidenceThreshold,
		sysLogger,
		policyCache,
	)

	// 7. Services
	publisherService := service.NewPublisherService(cfg.Keys.InteractionTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.InteractionTopic,
		uowFactory,
		natsPub,
	)
	usageLimiter := service.NewUsageLimiter(rdb, cfg.Assistant.DailyQueryLimit)

	chatService := service.NewChatService(
		uowFactory,
		router,
		classifier,
		publisherService,
		usageLimiter,
		sysLogger,
		cfg.Assistant.ConfidenceThreshold,
		cfg.Ai.LLMProvider,
	)

	// 8. Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		ChatController:  chatController,
		ConsumerService: consumerService,
	}
}
