package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartphones/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	got []models.Message
	err error
}

func (s *stubProcessor) ProcessMessages(_ context.Context, history []models.Message) (*models.AgentResponse, error) {
	s.got = history
	if s.err != nil {
		return nil, s.err
	}
	reply := models.NewAssistantMessage("Pixel 8 costs 699.")
	return &models.AgentResponse{Messages: append(history, reply), Reply: reply.Content}, nil
}

type stubTool struct {
	input string
}

func (s *stubTool) Call(_ context.Context, input string) (string, error) {
	s.input = input
	return "Model: Pixel 8\nPrice: 699", nil
}

func serve(h interface{ RegisterRoutes(*mux.Router) }, req *http.Request) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAgentHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"valid history", `{"messages":[{"kind":"user","content":"price of Pixel 8?"}]}`, nil, http.StatusOK},
		{"invalid json", `{"messages":`, nil, http.StatusBadRequest},
		{"empty history", `{"messages":[]}`, nil, http.StatusBadRequest},
		{"service failure", `{"messages":[{"kind":"user","content":"hi"}]}`, errors.New("model down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &stubProcessor{err: tt.err}
			req := httptest.NewRequest(http.MethodPost, "/agent/chat", strings.NewReader(tt.body))
			rec := serve(NewAgentHandler(processor), req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp models.AgentResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "Pixel 8 costs 699.", resp.Reply)
			assert.Len(t, resp.Messages, 2)
			require.Len(t, processor.got, 1)
			assert.Equal(t, models.KindUser, processor.got[0].Kind)
		})
	}
}

func TestCatalogHandler(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		tool := &stubTool{}
		req := httptest.NewRequest(http.MethodGet, "/catalog/lookup?model=Pixel+8", nil)
		rec := serve(NewCatalogHandler(tool), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"model":"Pixel 8"}`, tool.input)

		var resp models.LookupResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Pixel 8", resp.Model)
		assert.Contains(t, resp.Result, "Price: 699")
	})

	t.Run("missing model", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/catalog/lookup", nil)
		rec := serve(NewCatalogHandler(&stubTool{}), req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
