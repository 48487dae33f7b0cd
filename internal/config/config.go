package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Corpus   CorpusConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	AnalysisTopicName  string
}

type DatabaseConfig struct {
	Connection string
}

type CorpusConfig struct {
	FilePath string
}

type AIConfig struct {
	LLMProvider          string // currently "gemini"
	LLMModel             string
	GeminiApiKey         string
	PredictionServiceURL string
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
			AnalysisTopicName:  getEnv("ANALYSIS_TOPIC_NAME", "USER_ANALYSIS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Corpus: CorpusConfig{
			FilePath: getEnv("CORPUS_FILE_PATH", "data/counseling-dataset.json"),
		},
		Ai: AIConfig{
			LLMProvider:          getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:             getEnv("LLM_MODEL", "gemini-2.0-flash-exp"),
			GeminiApiKey:         getEnv("GOOGLE_GEMINI_API_KEY", ""),
			PredictionServiceURL: getEnv("PREDICTION_SERVICE_URL", "http://127.0.0.1:5001/predict"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
