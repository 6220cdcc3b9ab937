package docindex

import (
	"net/url"

	"github.com/tmc/langchaingo/embeddings"
)

// NewQdrantIndexWithExistingCollection builds a QdrantIndex whose collection
// is reported as present, with points served from baseURL.
func NewQdrantIndexWithExistingCollection(baseURL *url.URL, collection string, embedder embeddings.Embedder) (*QdrantIndex, error) {
	return newQdrantIndex(&fakeCollections{exists: true}, baseURL, "secret", collection, 1536, embedder)
}
