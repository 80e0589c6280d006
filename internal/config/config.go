package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini     string
	InteractionTopic string // Chat interaction log topic
}

type AIConfig struct {
	OllamaBaseURL string
	LLMProvider   string // "ollama" or "gemini"
	LLMModel      string // e.g. "llama3", "gemini-1.5-flash"
	TimeoutSec    int
	MaxRetries    int
}

type AssistantConfig struct {
	ConfidenceThreshold float64
	CorpusPath          string // optional JSON corpus overriding the built-in one
	DailyQueryLimit     int    // per-user, 0 disables the limiter
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini:     getEnv("GOOGLE_GEMINI_API_KEY", ""),
			InteractionTopic: getEnv("CHAT_INTERACTION_TOPIC_NAME", "CHAT_INTERACTION_LOG"),
		},
		Ai: AIConfig{
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			TimeoutSec:    getEnvAsInt("LLM_TIMEOUT_SEC", 30),
			MaxRetries:    getEnvAsInt("LLM_MAX_RETRIES", 2),
		},
		Assistant: AssistantConfig{
			ConfidenceThreshold: getEnvAsFloat("INTENT_CONFIDENCE_THRESHOLD", 0.6),
			CorpusPath:          getEnv("CLASSIFIER_CORPUS_PATH", ""),
			DailyQueryLimit:     getEnvAsInt("CHAT_DAILY_QUERY_LIMIT", 100),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
