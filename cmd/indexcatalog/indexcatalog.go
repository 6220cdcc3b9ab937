package main

import (
	"context"
	"log"

	"smartphones/config"
	"smartphones/services"
)

func main() {
	log.Printf("[INFO] Starting catalog indexing process")

	cfg := config.Load()

	if cfg.VectorStore == "memory" {
		log.Fatal("[ERROR] VECTOR_STORE=memory keeps nothing after exit, choose qdrant or pinecone")
	}

	catalog := services.OpenCatalog(context.Background(), cfg)
	if !catalog.Available() {
		log.Fatal("[ERROR] Catalog could not be indexed, see the errors above")
	}

	log.Printf("[INFO] Catalog indexing process completed successfully")
}
