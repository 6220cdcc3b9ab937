package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"smartphones/models"

	"github.com/gorilla/mux"
)

// ToolCaller is the catalog retrieval tool as seen by the HTTP layer.
type ToolCaller interface {
	Call(ctx context.Context, input string) (string, error)
}

type CatalogHandler struct {
	tool ToolCaller
}

func NewCatalogHandler(tool ToolCaller) *CatalogHandler {
	return &CatalogHandler{tool: tool}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/catalog/lookup", h.Lookup).Methods("GET")
}

func (h *CatalogHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	model := strings.TrimSpace(r.URL.Query().Get("model"))
	if model == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Query parameter 'model' is required")
		return
	}

	log.Printf("[INFO] Catalog lookup request for model %q", model)

	input, err := json.Marshal(map[string]string{"model": model})
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.tool.Call(r.Context(), string(input))
	if err != nil {
		log.Printf("[ERROR] Catalog lookup failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, models.LookupResponse{Model: model, Result: result})
}
