package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider     string
	OpenAIModel     string
	OpenAIBaseURL   string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	AnthropicModel  string
	EmbeddingModel  string

	VectorStore       string
	CollectionName    string
	VectorDimension   int
	QdrantURL         string
	QdrantGRPCPort    int
	QdrantAPIKey      string
	PineconeAPIKey    string
	PineconeNamespace string

	CatalogPath  string
	CatalogDBURL string

	ChatUserID string
	Port       string
	LogFile    string
}

func Load() *Config {
	// A missing .env is fine, the environment may already carry everything.
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file loaded: %v", err)
	}

	return &Config{
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),

		VectorStore:       getEnv("VECTOR_STORE", "qdrant"),
		CollectionName:    getEnv("COLLECTION_NAME", "smartphones"),
		VectorDimension:   getEnvInt("VECTOR_DIMENSION", 1536),
		QdrantURL:         getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantGRPCPort:    getEnvInt("QDRANT_GRPC_PORT", 6334),
		QdrantAPIKey:      os.Getenv("QDRANT_API_KEY"),
		PineconeAPIKey:    os.Getenv("PINECONE_API_KEY"),
		PineconeNamespace: getEnv("PINECONE_NAMESPACE", "smartphones-catalog"),

		CatalogPath:  getEnv("CATALOG_PATH", "datasets/smartphones.json"),
		CatalogDBURL: os.Getenv("CATALOG_DB_URL"),

		ChatUserID: getEnv("CHAT_USER_ID", "HyperUser"),
		Port:       getEnv("PORT", "8080"),
		LogFile:    os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARN] Ignoring invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

// SetupLogging sends log output to LOG_FILE when configured so that
// service logs do not interleave with the console conversation.
func (c *Config) SetupLogging() (func(), error) {
	if c.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
