package docindex

import (
	"context"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// MemoryIndex keeps documents in process and ranks them by fuzzy match
// against the model name. It stands in for a vector service when none is
// available.
type MemoryIndex struct {
	mu      sync.RWMutex
	name    string
	created bool
	docs    []Document
}

func NewMemoryIndex(name string) *MemoryIndex {
	return &MemoryIndex{name: name}
}

func (m *MemoryIndex) Name() string {
	return m.name
}

func (m *MemoryIndex) Exists(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created, nil
}

func (m *MemoryIndex) Create(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = true
	return nil
}

func (m *MemoryIndex) Add(ctx context.Context, docs []Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range docs {
		if doc.Model == "" {
			doc.Model = modelFromContent(doc.Content)
		}
		m.docs = append(m.docs, doc)
	}
	return nil
}

func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *MemoryIndex) Search(ctx context.Context, query string, k int) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := lo.Map(m.docs, func(d Document, _ int) string { return d.Model })
	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	if k > 0 && len(ranks) > k {
		ranks = ranks[:k]
	}

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Document {
		return m.docs[r.OriginalIndex]
	}), nil
}
