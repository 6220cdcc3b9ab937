package docindex

import (
	"context"
	"fmt"
	"log"
	"net/url"

	qdrantclient "github.com/qdrant/go-client/qdrant"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores/qdrant"
)

// collectionAdmin is the part of the Qdrant gRPC client used to manage the
// collection itself. Points are written and searched through the
// langchaingo store over REST.
type collectionAdmin interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrantclient.CreateCollection) error
}

// QdrantIndex stores the catalog in a Qdrant collection.
type QdrantIndex struct {
	admin      collectionAdmin
	collection string
	dimension  int
	store      qdrant.Store
}

func NewQdrantIndex(rawURL string, grpcPort int, apiKey, collection string, dimension int, embedder embeddings.Embedder) (*QdrantIndex, error) {
	log.Printf("[INFO] Initializing Qdrant index %s at %s", collection, rawURL)

	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Qdrant URL: %w", err)
	}

	client, err := qdrantclient.NewClient(&qdrantclient.Config{
		Host:   baseURL.Hostname(),
		Port:   grpcPort,
		APIKey: apiKey,
		UseTLS: baseURL.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return newQdrantIndex(client, baseURL, apiKey, collection, dimension, embedder)
}

func newQdrantIndex(admin collectionAdmin, baseURL *url.URL, apiKey, collection string, dimension int, embedder embeddings.Embedder) (*QdrantIndex, error) {
	opts := []qdrant.Option{
		qdrant.WithURL(*baseURL),
		qdrant.WithCollectionName(collection),
		qdrant.WithEmbedder(embedder),
	}
	if apiKey != "" {
		opts = append(opts, qdrant.WithAPIKey(apiKey))
	}

	store, err := qdrant.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant store: %w", err)
	}

	return &QdrantIndex{
		admin:      admin,
		collection: collection,
		dimension:  dimension,
		store:      store,
	}, nil
}

func (q *QdrantIndex) Name() string {
	return q.collection
}

func (q *QdrantIndex) Exists(ctx context.Context) (bool, error) {
	exists, err := q.admin.CollectionExists(ctx, q.collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", q.collection, err)
	}
	return exists, nil
}

func (q *QdrantIndex) Create(ctx context.Context) error {
	log.Printf("[INFO] Creating Qdrant collection %s (dimension %d, cosine)", q.collection, q.dimension)

	err := q.admin.CreateCollection(ctx, &qdrantclient.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: qdrantclient.NewVectorsConfig(&qdrantclient.VectorParams{
			Size:     uint64(q.dimension),
			Distance: qdrantclient.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", q.collection, err)
	}

	log.Printf("[INFO] Collection %s created", q.collection)
	return nil
}

func (q *QdrantIndex) Add(ctx context.Context, docs []Document) error {
	schemaDocs := lo.Map(docs, func(d Document, _ int) schema.Document {
		return schema.Document{
			PageContent: d.Content,
			Metadata:    map[string]any{"model": d.Model, "source_id": d.ID},
		}
	})

	ids, err := q.store.AddDocuments(ctx, schemaDocs)
	if err != nil {
		return fmt.Errorf("failed to add documents to %s: %w", q.collection, err)
	}

	log.Printf("[INFO] Added %d documents to collection %s", len(ids), q.collection)
	return nil
}

func (q *QdrantIndex) Search(ctx context.Context, query string, k int) ([]Document, error) {
	results, err := q.store.SimilaritySearch(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search collection %s: %w", q.collection, err)
	}

	return lo.Map(results, func(r schema.Document, _ int) Document {
		id, _ := r.Metadata["source_id"].(string)
		model, _ := r.Metadata["model"].(string)
		if model == "" {
			model = modelFromContent(r.PageContent)
		}
		return Document{
			ID:      id,
			Model:   model,
			Content: r.PageContent,
		}
	}), nil
}
