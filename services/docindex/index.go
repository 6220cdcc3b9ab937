package docindex

import (
	"context"
	"fmt"
	"strings"

	"smartphones/config"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Document is one flattened catalog entry as stored in a vector index.
type Document struct {
	ID      string
	Model   string
	Content string
}

// Index is the external nearest-neighbor service the catalog is stored in.
// Implementations are keyed by a fixed collection name.
type Index interface {
	Name() string
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context) error
	Add(ctx context.Context, docs []Document) error
	Search(ctx context.Context, query string, k int) ([]Document, error)
}

func NewEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return embedder, nil
}

// NewIndex builds the backend selected by VECTOR_STORE.
func NewIndex(cfg *config.Config) (Index, error) {
	switch strings.ToLower(cfg.VectorStore) {
	case "memory":
		return NewMemoryIndex(cfg.CollectionName), nil
	case "qdrant":
		embedder, err := NewEmbedder(cfg)
		if err != nil {
			return nil, err
		}
		return NewQdrantIndex(cfg.QdrantURL, cfg.QdrantGRPCPort, cfg.QdrantAPIKey, cfg.CollectionName, cfg.VectorDimension, embedder)
	case "pinecone":
		embedder, err := NewEmbedder(cfg)
		if err != nil {
			return nil, err
		}
		return NewPineconeIndex(cfg.PineconeAPIKey, cfg.CollectionName, cfg.PineconeNamespace, cfg.VectorDimension, embedder)
	default:
		return nil, fmt.Errorf("unknown vector store %q", cfg.VectorStore)
	}
}

// modelFromContent recovers the model name from a flattened catalog entry.
func modelFromContent(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	if name, ok := strings.CutPrefix(first, "Model: "); ok {
		return strings.TrimSpace(name)
	}
	return ""
}
