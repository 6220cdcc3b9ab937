package docindex

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"google.golang.org/protobuf/types/known/structpb"
)

const pineconeBatchSize = 10

type PineconeIndex struct {
	client    *pinecone.Client
	embedder  embeddings.Embedder
	indexName string
	namespace string
	dimension int32
	conn      *pinecone.IndexConnection
}

func NewPineconeIndex(apiKey, indexName, namespace string, dimension int, embedder embeddings.Embedder) (*PineconeIndex, error) {
	log.Printf("[INFO] Initializing Pinecone index %s", indexName)

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	return &PineconeIndex{
		client:    pc,
		embedder:  embedder,
		indexName: indexName,
		namespace: namespace,
		dimension: int32(dimension),
	}, nil
}

func (p *PineconeIndex) Name() string {
	return p.indexName
}

func (p *PineconeIndex) Exists(ctx context.Context) (bool, error) {
	indexes, err := p.client.ListIndexes(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list indexes: %w", err)
	}

	for _, idx := range indexes {
		if idx.Name == p.indexName {
			return true, nil
		}
	}
	return false, nil
}

func (p *PineconeIndex) Create(ctx context.Context) error {
	log.Printf("[INFO] Creating Pinecone index: %s", p.indexName)

	deletionProtection := pinecone.DeletionProtectionDisabled
	metric := pinecone.Cosine
	_, err := p.client.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:               p.indexName,
		Dimension:          &p.dimension,
		Metric:             &metric,
		Cloud:              pinecone.Aws,
		Region:             "us-east-1",
		DeletionProtection: &deletionProtection,
		Tags:               &pinecone.IndexTags{"project": "smartphone-assistant"},
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	for {
		idx, err := p.client.DescribeIndex(ctx, p.indexName)
		if err != nil {
			return fmt.Errorf("failed to describe index: %w", err)
		}
		if idx.Status.Ready {
			log.Printf("[INFO] Index %s is ready", p.indexName)
			return nil
		}
		log.Printf("[INFO] Waiting for index %s to be ready...", p.indexName)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Second):
		}
	}
}

func (p *PineconeIndex) connection(ctx context.Context) (*pinecone.IndexConnection, error) {
	if p.conn != nil {
		return p.conn, nil
	}

	idxDesc, err := p.client.DescribeIndex(ctx, p.indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index: %w", err)
	}

	conn, err := p.client.Index(pinecone.NewIndexConnParams{
		Host:      idxDesc.Host,
		Namespace: p.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index connection: %w", err)
	}

	p.conn = conn
	return conn, nil
}

func (p *PineconeIndex) Add(ctx context.Context, docs []Document) error {
	conn, err := p.connection(ctx)
	if err != nil {
		return err
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectorsValues, err := p.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	var vectors []*pinecone.Vector
	for i, doc := range docs {
		metadata, err := structpb.NewStruct(map[string]any{
			"model":      doc.Model,
			"text":       doc.Content,
			"created_at": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("failed to create metadata struct for %s: %w", doc.ID, err)
		}

		vectors = append(vectors, &pinecone.Vector{
			Id:       doc.ID,
			Values:   &vectorsValues[i],
			Metadata: metadata,
		})
	}

	for i := 0; i < len(vectors); i += pineconeBatchSize {
		end := min(i+pineconeBatchSize, len(vectors))

		count, err := conn.UpsertVectors(ctx, vectors[i:end])
		if err != nil {
			return fmt.Errorf("failed to upsert vector batch: %w", err)
		}
		log.Printf("[INFO] Successfully upserted %d vectors (batch %d)", count, i/pineconeBatchSize+1)
	}

	return nil
}

func (p *PineconeIndex) Search(ctx context.Context, query string, k int) ([]Document, error) {
	conn, err := p.connection(ctx)
	if err != nil {
		return nil, err
	}

	queryVector, err := p.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	result, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          queryVector,
		TopK:            uint32(k),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}

	var docs []Document
	for _, match := range result.Matches {
		if match.Vector == nil || match.Vector.Metadata == nil {
			continue
		}
		metadata := match.Vector.Metadata.AsMap()
		text, _ := metadata["text"].(string)
		model, _ := metadata["model"].(string)
		docs = append(docs, Document{
			ID:      match.Vector.Id,
			Model:   model,
			Content: text,
		})
	}

	return docs, nil
}
