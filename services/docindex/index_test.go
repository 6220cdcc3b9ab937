package docindex

import (
	"testing"

	"smartphones/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex(&config.Config{VectorStore: "memory", CollectionName: "smartphones"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryIndex{}, idx)
	assert.Equal(t, "smartphones", idx.Name())

	_, err = NewIndex(&config.Config{VectorStore: "chroma"})
	assert.ErrorContains(t, err, "unknown vector store")
}
