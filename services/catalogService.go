package services

import (
	"context"
	"fmt"
	"log"

	"smartphones/config"
	"smartphones/db"
	"smartphones/models"
	"smartphones/services/docindex"
)

// CatalogService owns the link between the catalog records and the vector
// index they are searched in. An empty or unreadable catalog leaves the
// service without an index and every lookup reports not found.
type CatalogService struct {
	index docindex.Index
	ready bool
}

func NewCatalogService(index docindex.Index) *CatalogService {
	return &CatalogService{index: index}
}

func (s *CatalogService) LoadFile(ctx context.Context, path string) []models.CatalogEntry {
	return s.Load(ctx, db.NewJSONFileCatalog(path))
}

// Load reads the catalog from source and makes sure the index holds it.
// It never fails: problems are logged and an empty result is returned.
func (s *CatalogService) Load(ctx context.Context, source db.CatalogSource) []models.CatalogEntry {
	log.Printf("[INFO] Starting catalog load")

	entries, err := source.LoadEntries()
	if err != nil {
		log.Printf("[ERROR] Failed to load catalog: %v", err)
		return []models.CatalogEntry{}
	}

	if len(entries) == 0 {
		log.Printf("[WARN] Catalog is empty, lookups will report not found")
		return []models.CatalogEntry{}
	}

	if s.index == nil {
		log.Printf("[WARN] No vector index configured, lookups will report not found")
		return entries
	}

	if err := s.ensureIndex(ctx, entries); err != nil {
		log.Printf("[ERROR] Failed to initialize the vector index: %v", err)
		return entries
	}

	s.ready = true
	log.Printf("[INFO] Catalog ready with %d entries in index %s", len(entries), s.index.Name())
	return entries
}

func (s *CatalogService) ensureIndex(ctx context.Context, entries []models.CatalogEntry) error {
	exists, err := s.index.Exists(ctx)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("[INFO] Index %s already exists, reusing it", s.index.Name())
		return nil
	}

	if err := s.index.Create(ctx); err != nil {
		return err
	}

	docs := make([]docindex.Document, len(entries))
	for i, entry := range entries {
		docs[i] = docindex.Document{
			ID:      fmt.Sprintf("smartphone-%d", i+1),
			Model:   entry.Model.String(),
			Content: entry.Text(),
		}
	}

	log.Printf("[INFO] Ingesting %d catalog entries into %s", len(docs), s.index.Name())
	if err := s.index.Add(ctx, docs); err != nil {
		log.Printf("[WARN] Index %s was created but not filled; later runs reuse it as is, drop it to re-ingest the catalog", s.index.Name())
		return err
	}
	return nil
}

// OpenCatalog builds the configured index and loads the configured catalog
// source into it. Failures leave a service that reports not found.
func OpenCatalog(ctx context.Context, cfg *config.Config) *CatalogService {
	index, err := docindex.NewIndex(cfg)
	if err != nil {
		log.Printf("[ERROR] Failed to initialize vector index: %v", err)
		index = nil
	}
	svc := NewCatalogService(index)

	if cfg.CatalogDBURL != "" {
		repo, err := db.NewPostgresCatalogRepository(cfg.CatalogDBURL)
		if err == nil {
			defer repo.Close()
			svc.Load(ctx, repo)
			return svc
		}
		log.Printf("[ERROR] Failed to open catalog database, falling back to %s: %v", cfg.CatalogPath, err)
	}

	svc.LoadFile(ctx, cfg.CatalogPath)
	return svc
}

func (s *CatalogService) Available() bool {
	return s.ready
}

// Lookup returns the single closest catalog document for model, or nil
// when there is no catalog or no match.
func (s *CatalogService) Lookup(ctx context.Context, model string) (*docindex.Document, error) {
	if !s.ready {
		log.Printf("[WARN] Lookup for %q without a catalog", model)
		return nil, nil
	}

	docs, err := s.index.Search(ctx, model, 1)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}
