package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"smartphones/models"

	_ "github.com/lib/pq"
)

type CatalogSource interface {
	LoadEntries() ([]models.CatalogEntry, error)
}

// JSONFileCatalog reads the whole catalog from a JSON array on disk.
type JSONFileCatalog struct {
	path string
}

func NewJSONFileCatalog(path string) *JSONFileCatalog {
	return &JSONFileCatalog{path: path}
}

func (c *JSONFileCatalog) Path() string {
	return c.path
}

func (c *JSONFileCatalog) LoadEntries() ([]models.CatalogEntry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", c.path, err)
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", c.path, err)
	}

	return entries, nil
}

type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(databaseURL string) (*PostgresCatalogRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalogRepository{db: db}, nil
}

func (r *PostgresCatalogRepository) LoadEntries() ([]models.CatalogEntry, error) {
	query := `
		SELECT model, price, rating, sim, processor, ram, battery, display, camera, card, os, in_stock
		FROM catalog.smartphones
		ORDER BY model`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query smartphones: %w", err)
	}
	defer rows.Close()

	var entries []models.CatalogEntry
	for rows.Next() {
		var e models.CatalogEntry
		err := rows.Scan(&e.Model, &e.Price, &e.Rating, &e.SIM, &e.Processor, &e.RAM,
			&e.Battery, &e.Display, &e.Camera, &e.Card, &e.OS, &e.InStock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan smartphone: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate smartphones: %w", err)
	}

	return entries, nil
}

func (r *PostgresCatalogRepository) Close() error {
	return r.db.Close()
}
